package db

import (
	"github.com/ananyaa-sutaria/ThinkPink-sub000/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BadgeRepository struct {
	database *gorm.DB
}

func NewBadgeRepository(database *gorm.DB) *BadgeRepository {
	return &BadgeRepository{database: database}
}

func (repo *BadgeRepository) FindMint(walletAddress string, badgeID string) (models.BadgeMint, bool, error) {
	var mint models.BadgeMint
	result := repo.database.
		Where("wallet_address = ? AND badge_id = ?", walletAddress, badgeID).
		Limit(1).
		Find(&mint)
	if result.Error != nil {
		return models.BadgeMint{}, false, result.Error
	}
	return mint, result.RowsAffected > 0, nil
}

// RecordMint keeps one row per (wallet, badge); re-recording is a no-op.
func (repo *BadgeRepository) RecordMint(mint *models.BadgeMint) (bool, error) {
	result := repo.database.Clauses(clause.OnConflict{DoNothing: true}).Create(mint)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (repo *BadgeRepository) ListByWallet(walletAddress string) ([]models.BadgeMint, error) {
	mints := make([]models.BadgeMint, 0)
	if err := repo.database.Where("wallet_address = ?", walletAddress).Order("awarded_at ASC").Find(&mints).Error; err != nil {
		return nil, err
	}
	return mints, nil
}

func (repo *BadgeRepository) CreatePointsMint(mint *models.PointsMint) error {
	return repo.database.Create(mint).Error
}

func (repo *BadgeRepository) FindPointsMint(mintAddress string) (models.PointsMint, bool, error) {
	var mint models.PointsMint
	result := repo.database.Where("mint_address = ?", mintAddress).Limit(1).Find(&mint)
	if result.Error != nil {
		return models.PointsMint{}, false, result.Error
	}
	return mint, result.RowsAffected > 0, nil
}

func (repo *BadgeRepository) LatestPointsMint() (models.PointsMint, bool, error) {
	var mint models.PointsMint
	result := repo.database.Order("created_at DESC, id DESC").Limit(1).Find(&mint)
	if result.Error != nil {
		return models.PointsMint{}, false, result.Error
	}
	return mint, result.RowsAffected > 0, nil
}
