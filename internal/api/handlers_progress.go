package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) GetProgress(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	snapshot, err := handler.ledgerService.Snapshot(user.ID, handler.todayKey())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(snapshot)
}
