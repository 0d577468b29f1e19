package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/ananyaa-sutaria/ThinkPink-sub000/internal/models"
	"github.com/ananyaa-sutaria/ThinkPink-sub000/internal/settlement"
	"github.com/google/uuid"
)

var (
	ErrDonationNotFound  = errors.New("donation submission not found")
	ErrAlreadyReviewed   = errors.New("donation submission already reviewed")
	ErrMissingProofPhoto = errors.New("proof photo is required")
	ErrMissingWallet     = errors.New("wallet address is required")
)

type DonationRepository interface {
	Create(submission *models.DonationSubmission) error
	FindByID(submissionID string) (models.DonationSubmission, error)
	ListByStatus(status string) ([]models.DonationSubmission, error)
	ListByUser(userID uint) ([]models.DonationSubmission, error)
	TransitionStatus(submissionID string, toStatus string, reviewedAt time.Time) (bool, error)
	MarkPointsAwarded(submissionID string) (bool, error)
	SetMintSignature(submissionID string, signature string) error
	ListApprovedUnminted(limit int) ([]models.DonationSubmission, error)
}

type DonationLedger interface {
	AddPoints(userID uint, delta int64) error
}

type DonationService struct {
	donations DonationRepository
	ledger    DonationLedger
	settle    settlement.Service
}

func NewDonationService(donations DonationRepository, ledger DonationLedger, settle settlement.Service) *DonationService {
	return &DonationService{donations: donations, ledger: ledger, settle: settle}
}

func (service *DonationService) Submit(userID uint, walletAddress string, location string, photoURL string, proofHash string, now time.Time) (models.DonationSubmission, error) {
	if walletAddress == "" {
		return models.DonationSubmission{}, ErrMissingWallet
	}
	if photoURL == "" || proofHash == "" {
		return models.DonationSubmission{}, ErrMissingProofPhoto
	}

	submission := models.DonationSubmission{
		ID:            uuid.NewString(),
		UserID:        userID,
		WalletAddress: walletAddress,
		Location:      location,
		PhotoURL:      photoURL,
		ProofHash:     proofHash,
		Status:        models.DonationStatusPending,
		CreatedAt:     now,
	}
	if err := service.donations.Create(&submission); err != nil {
		return models.DonationSubmission{}, err
	}
	return submission, nil
}

func (service *DonationService) List(status string) ([]models.DonationSubmission, error) {
	return service.donations.ListByStatus(status)
}

func (service *DonationService) ListForUser(userID uint) ([]models.DonationSubmission, error) {
	return service.donations.ListByUser(userID)
}

// Approve moves a pending submission to approved and settles its reward.
// Approving an already-approved record is a no-op; approving a rejected
// one is a state conflict. The point credit happens at most once, guarded
// by the points_awarded flag, and a failed mint leaves the credit intact
// for the retry sweeper.
func (service *DonationService) Approve(ctx context.Context, submissionID string, now time.Time) (models.DonationSubmission, error) {
	submission, err := service.donations.FindByID(submissionID)
	if err != nil {
		return models.DonationSubmission{}, ErrDonationNotFound
	}

	switch submission.Status {
	case models.DonationStatusApproved:
		return submission, nil
	case models.DonationStatusRejected:
		return models.DonationSubmission{}, ErrAlreadyReviewed
	}

	transitioned, err := service.donations.TransitionStatus(submissionID, models.DonationStatusApproved, now)
	if err != nil {
		return models.DonationSubmission{}, err
	}
	if !transitioned {
		// Lost a review race; report the state the record settled into.
		current, err := service.donations.FindByID(submissionID)
		if err != nil {
			return models.DonationSubmission{}, ErrDonationNotFound
		}
		if current.Status == models.DonationStatusApproved {
			return current, nil
		}
		return models.DonationSubmission{}, ErrAlreadyReviewed
	}

	awarded, err := service.donations.MarkPointsAwarded(submissionID)
	if err != nil {
		return models.DonationSubmission{}, err
	}
	if awarded {
		if err := service.ledger.AddPoints(submission.UserID, DonationReward); err != nil {
			return models.DonationSubmission{}, err
		}
	}

	service.mintDonationReward(ctx, submissionID, submission.WalletAddress)

	return service.donations.FindByID(submissionID)
}

func (service *DonationService) Reject(submissionID string, now time.Time) (models.DonationSubmission, error) {
	submission, err := service.donations.FindByID(submissionID)
	if err != nil {
		return models.DonationSubmission{}, ErrDonationNotFound
	}

	switch submission.Status {
	case models.DonationStatusRejected:
		return submission, nil
	case models.DonationStatusApproved:
		return models.DonationSubmission{}, ErrAlreadyReviewed
	}

	transitioned, err := service.donations.TransitionStatus(submissionID, models.DonationStatusRejected, now)
	if err != nil {
		return models.DonationSubmission{}, err
	}
	if !transitioned {
		current, err := service.donations.FindByID(submissionID)
		if err != nil {
			return models.DonationSubmission{}, ErrDonationNotFound
		}
		if current.Status == models.DonationStatusRejected {
			return current, nil
		}
		return models.DonationSubmission{}, ErrAlreadyReviewed
	}

	return service.donations.FindByID(submissionID)
}

// RetryPendingMints re-attempts the on-chain mint for approved donations
// whose earlier mint failed. Local state is already settled, so retries
// are safe at any time.
func (service *DonationService) RetryPendingMints(ctx context.Context, limit int) {
	submissions, err := service.donations.ListApprovedUnminted(limit)
	if err != nil {
		log.Printf("donation mint sweep: list failed: %v", err)
		return
	}
	for _, submission := range submissions {
		service.mintDonationReward(ctx, submission.ID, submission.WalletAddress)
	}
}

func (service *DonationService) mintDonationReward(ctx context.Context, submissionID string, walletAddress string) {
	receipt, err := service.settle.MintBadge(ctx, walletAddress, models.BadgeDonationHero)
	if err != nil {
		log.Printf("donation %s: mint deferred: %v", submissionID, err)
		return
	}
	if err := service.donations.SetMintSignature(submissionID, receipt.Signature); err != nil {
		log.Printf("donation %s: record mint signature: %v", submissionID, err)
	}
}
