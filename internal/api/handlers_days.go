package api

import (
	"github.com/ananyaa-sutaria/ThinkPink-sub000/internal/services"
	"github.com/gofiber/fiber/v2"
)

type dayEntryRequest struct {
	PeriodStart bool     `json:"period_start"`
	PeriodEnd   bool     `json:"period_end"`
	Spotting    bool     `json:"spotting"`
	Mood        int      `json:"mood"`
	Energy      int      `json:"energy"`
	Symptoms    []string `json:"symptoms"`
	Notes       string   `json:"notes"`
}

func (handler *Handler) UpsertDay(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	day, err := parseDayParam(c.Params("date"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "date must be YYYY-MM-DD")
	}

	var req dayEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	entry, err := handler.dayService.SaveDay(user.ID, day, services.DayEntryInput{
		PeriodStart: req.PeriodStart,
		PeriodEnd:   req.PeriodEnd,
		Spotting:    req.Spotting,
		Mood:        req.Mood,
		Energy:      req.Energy,
		Symptoms:    req.Symptoms,
		Notes:       req.Notes,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(entry)
}

func (handler *Handler) GetDay(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	day, err := parseDayParam(c.Params("date"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "date must be YYYY-MM-DD")
	}

	entry, found, err := handler.dayService.FetchDay(user.ID, day)
	if err != nil {
		return serviceError(c, err)
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "no entry for that day")
	}
	return c.JSON(entry)
}

func (handler *Handler) GetRecentDays(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	entries, err := handler.dayService.FetchRecent(user.ID, c.QueryInt("limit"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"days": entries})
}

func (handler *Handler) GetDaysRange(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	from, err := parseDayParam(c.Query("from"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "from must be YYYY-MM-DD")
	}
	to, err := parseDayParam(c.Query("to"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "to must be YYYY-MM-DD")
	}
	if to.Before(from) {
		return apiError(c, fiber.StatusBadRequest, "to must not precede from")
	}

	entries, err := handler.dayService.FetchRange(user.ID, from, to)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"days": entries})
}
