package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

type createProposalRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ClosesAt    time.Time `json:"closes_at"`
}

func (handler *Handler) CreateProposal(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var req createProposalRequest
	if err := c.BodyParser(&req); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	proposal, err := handler.governanceService.CreateProposal(user.ID, req.Title, req.Description, req.ClosesAt, handler.now())
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(proposal)
}

func (handler *Handler) ListProposals(c *fiber.Ctx) error {
	views, err := handler.governanceService.ListProposals(handler.now())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"proposals": views})
}

type voteRequest struct {
	Choice string `json:"choice"`
}

func (handler *Handler) VoteProposal(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	proposalID, err := c.ParamsInt("id")
	if err != nil || proposalID < 1 {
		return apiError(c, fiber.StatusBadRequest, "invalid proposal id")
	}

	var req voteRequest
	if err := c.BodyParser(&req); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	vote, err := handler.governanceService.Vote(user.ID, uint(proposalID), req.Choice, handler.now())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(vote)
}
