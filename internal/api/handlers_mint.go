package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

type createMintRequest struct {
	Authority string `json:"authority"`
}

func (handler *Handler) CreatePointsMint(c *fiber.Ctx) error {
	var req createMintRequest
	if err := c.BodyParser(&req); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	authority := strings.TrimSpace(req.Authority)
	if authority == "" {
		return apiError(c, fiber.StatusBadRequest, "authority is required")
	}

	mint, err := handler.badgeService.CreatePointsMint(c.Context(), authority, handler.now())
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(mint)
}

func (handler *Handler) LookupPointsMint(c *fiber.Ctx) error {
	info, err := handler.badgeService.LookupMint(c.Context(), c.Params("address"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(info)
}
