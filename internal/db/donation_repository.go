package db

import (
	"time"

	"github.com/ananyaa-sutaria/ThinkPink-sub000/internal/models"
	"gorm.io/gorm"
)

type DonationRepository struct {
	database *gorm.DB
}

func NewDonationRepository(database *gorm.DB) *DonationRepository {
	return &DonationRepository{database: database}
}

func (repo *DonationRepository) Create(submission *models.DonationSubmission) error {
	return repo.database.Create(submission).Error
}

func (repo *DonationRepository) FindByID(submissionID string) (models.DonationSubmission, error) {
	var submission models.DonationSubmission
	if err := repo.database.First(&submission, "id = ?", submissionID).Error; err != nil {
		return models.DonationSubmission{}, err
	}
	return submission, nil
}

func (repo *DonationRepository) ListByStatus(status string) ([]models.DonationSubmission, error) {
	submissions := make([]models.DonationSubmission, 0)
	query := repo.database.Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Find(&submissions).Error; err != nil {
		return nil, err
	}
	return submissions, nil
}

func (repo *DonationRepository) ListByUser(userID uint) ([]models.DonationSubmission, error) {
	submissions := make([]models.DonationSubmission, 0)
	if err := repo.database.Where("user_id = ?", userID).Order("created_at DESC").Find(&submissions).Error; err != nil {
		return nil, err
	}
	return submissions, nil
}

// TransitionStatus moves a submission out of pending exactly once. The
// status guard in the WHERE clause makes a repeated transition report
// false instead of overwriting the earlier decision.
func (repo *DonationRepository) TransitionStatus(submissionID string, toStatus string, reviewedAt time.Time) (bool, error) {
	result := repo.database.Model(&models.DonationSubmission{}).
		Where("id = ? AND status = ?", submissionID, models.DonationStatusPending).
		Updates(map[string]any{
			"status":      toStatus,
			"reviewed_at": reviewedAt,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (repo *DonationRepository) MarkPointsAwarded(submissionID string) (bool, error) {
	result := repo.database.Model(&models.DonationSubmission{}).
		Where("id = ? AND points_awarded = ?", submissionID, false).
		Update("points_awarded", true)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (repo *DonationRepository) SetMintSignature(submissionID string, signature string) error {
	return repo.database.Model(&models.DonationSubmission{}).
		Where("id = ?", submissionID).
		Update("mint_signature", signature).Error
}

// ListApprovedUnminted feeds the settlement retry sweeper.
func (repo *DonationRepository) ListApprovedUnminted(limit int) ([]models.DonationSubmission, error) {
	submissions := make([]models.DonationSubmission, 0)
	query := repo.database.
		Where("status = ? AND mint_signature = ''", models.DonationStatusApproved).
		Order("created_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&submissions).Error; err != nil {
		return nil, err
	}
	return submissions, nil
}
