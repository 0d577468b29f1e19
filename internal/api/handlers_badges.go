package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

type mintBadgeRequest struct {
	WalletAddress string `json:"wallet_address"`
}

func (handler *Handler) MintBadge(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var req mintBadgeRequest
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	mint, err := handler.badgeService.MintCycleBadge(c.Context(), user.ID, strings.TrimSpace(req.WalletAddress), handler.now())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(mint)
}

func (handler *Handler) ListBadges(c *fiber.Ctx) error {
	mints, err := handler.badgeService.ListBadges(c.Params("wallet"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"badges": mints})
}
