package api

import (
	"github.com/ananyaa-sutaria/ThinkPink-sub000/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) TodayChallenges(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"date":       handler.todayKey(),
		"challenges": services.ChallengesForDay(handler.now()),
	})
}

func (handler *Handler) CompleteChallenge(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	awarded, err := handler.challengeService.Complete(user.ID, c.Params("id"), handler.now())
	if err != nil {
		return serviceError(c, err)
	}

	balance, err := handler.ledgerService.Balance(user.ID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"points_awarded": awarded, "balance": balance})
}
