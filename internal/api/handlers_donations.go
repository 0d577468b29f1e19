package api

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/ananyaa-sutaria/ThinkPink-sub000/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// SubmitDonation accepts a multipart form with the proof photo and stores
// the photo before the submission record, so a stored record always points
// at a reachable URL.
func (handler *Handler) SubmitDonation(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	walletAddress := strings.TrimSpace(c.FormValue("wallet_address"))
	if walletAddress == "" {
		walletAddress = user.WalletAddress
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "proof photo is required")
	}
	if handler.photos == nil {
		return apiError(c, fiber.StatusServiceUnavailable, "photo storage not configured")
	}

	proofHash, err := hashUpload(fileHeader)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "unreadable photo upload")
	}

	key := "donations/" + uuid.NewString() + strings.ToLower(filepath.Ext(fileHeader.Filename))
	photoURL, err := handler.photos.Upload(c.Context(), fileHeader, key)
	if err != nil {
		return apiError(c, fiber.StatusBadGateway, "photo upload failed")
	}

	submission, err := handler.donationService.Submit(
		user.ID, walletAddress, strings.TrimSpace(c.FormValue("location")),
		photoURL, proofHash, handler.now(),
	)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(submission)
}

func hashUpload(fileHeader *multipart.FileHeader) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	hasher := sha256.New()
	if _, err := io.Copy(hasher, file); err != nil {
		return "", err
	}
	return hex.EncodeToString(hasher.Sum(nil)), nil
}

func (handler *Handler) ListMyDonations(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	submissions, err := handler.donationService.ListForUser(user.ID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"donations": submissions})
}

func (handler *Handler) ListDonations(c *fiber.Ctx) error {
	status := c.Query("status", models.DonationStatusPending)
	switch status {
	case models.DonationStatusPending, models.DonationStatusApproved, models.DonationStatusRejected:
	default:
		return apiError(c, fiber.StatusBadRequest, "unknown status")
	}

	submissions, err := handler.donationService.List(status)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"donations": submissions})
}

func (handler *Handler) ApproveDonation(c *fiber.Ctx) error {
	submission, err := handler.donationService.Approve(c.Context(), c.Params("id"), handler.now())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(submission)
}

func (handler *Handler) RejectDonation(c *fiber.Ctx) error {
	submission, err := handler.donationService.Reject(c.Params("id"), handler.now())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(submission)
}
