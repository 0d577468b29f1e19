package api

import "github.com/gofiber/fiber/v2"

type redeemRequest struct {
	Cost int64 `json:"cost"`
}

func (handler *Handler) RedeemPoints(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var req redeemRequest
	if err := c.BodyParser(&req); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	result, err := handler.rewardService.Redeem(c.Context(), user.ID, req.Cost)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(result)
}
