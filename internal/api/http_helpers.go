package api

import (
	"errors"
	"strings"
	"time"

	"github.com/ananyaa-sutaria/ThinkPink-sub000/internal/models"
	"github.com/ananyaa-sutaria/ThinkPink-sub000/internal/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const contextUserKey = "current_user"

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok
}

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// serviceError maps domain sentinels onto the HTTP taxonomy: validation
// 400, not-found 404, state conflicts 409, settlement trouble 502 with a
// generic retry message.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidMood),
		errors.Is(err, services.ErrInvalidEnergy),
		errors.Is(err, services.ErrUnansweredQuestions),
		errors.Is(err, services.ErrInvalidVoteChoice),
		errors.Is(err, services.ErrInvalidProposal),
		errors.Is(err, services.ErrInvalidRedeemCost),
		errors.Is(err, services.ErrMissingWallet),
		errors.Is(err, services.ErrMissingProofPhoto):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrQuizLevelNotFound),
		errors.Is(err, services.ErrDonationNotFound),
		errors.Is(err, services.ErrProposalNotFound),
		errors.Is(err, services.ErrMintNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return apiError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrInsufficientPoints),
		errors.Is(err, services.ErrAlreadyReviewed),
		errors.Is(err, services.ErrProposalClosed),
		errors.Is(err, services.ErrAlreadyVoted),
		errors.Is(err, services.ErrNoVotingPower),
		errors.Is(err, services.ErrNoActiveAttempt),
		errors.Is(err, services.ErrAttemptAlreadyScored),
		errors.Is(err, services.ErrChallengeNotToday),
		errors.Is(err, services.ErrBadgeLocked),
		errors.Is(err, services.ErrUserWalletNeeded):
		return apiError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, services.ErrSettlementFailed):
		return apiError(c, fiber.StatusBadGateway, "settlement unavailable, try again")
	default:
		return apiError(c, fiber.StatusInternalServerError, "internal error")
	}
}

func parseDayParam(raw string, location *time.Location) (time.Time, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, errors.New("empty date")
	}
	day, err := time.ParseInLocation("2006-01-02", value, location)
	if err != nil {
		return time.Time{}, err
	}
	return day, nil
}

func (handler *Handler) now() time.Time {
	return time.Now().In(handler.location)
}

func (handler *Handler) todayKey() string {
	return handler.now().Format("2006-01-02")
}
