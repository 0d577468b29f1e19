package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) CycleToday(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	estimate, err := handler.dayService.EstimateFor(user.ID, handler.now())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(estimate)
}

func (handler *Handler) CycleForDate(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	day, err := parseDayParam(c.Params("date"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "date must be YYYY-MM-DD")
	}

	estimate, err := handler.dayService.EstimateFor(user.ID, day)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(estimate)
}
