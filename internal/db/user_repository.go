package db

import (
	"errors"

	"github.com/ananyaa-sutaria/ThinkPink-sub000/internal/models"
	"gorm.io/gorm"
)

var ErrInsufficientPoints = errors.New("insufficient points")

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

func (repo *UserRepository) FindByID(userID uint) (models.User, error) {
	var user models.User
	if err := repo.database.First(&user, userID).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) FindByNormalizedEmail(email string) (models.User, error) {
	var user models.User
	if err := repo.database.Where("lower(trim(email)) = ?", email).First(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) FindByWallet(walletAddress string) (models.User, bool, error) {
	var user models.User
	result := repo.database.Where("wallet_address = ?", walletAddress).Limit(1).Find(&user)
	if result.Error != nil {
		return models.User{}, false, result.Error
	}
	return user, result.RowsAffected > 0, nil
}

func (repo *UserRepository) Create(user *models.User) error {
	return repo.database.Create(user).Error
}

func (repo *UserRepository) Save(user *models.User) error {
	return repo.database.Save(user).Error
}

func (repo *UserRepository) UpdateWalletAddress(userID uint, walletAddress string) error {
	return repo.database.Model(&models.User{}).Where("id = ?", userID).
		Update("wallet_address", walletAddress).Error
}

// AddPoints applies delta as a single guarded UPDATE so concurrent credits
// never lose updates and a debit can never take the balance below zero.
func (repo *UserRepository) AddPoints(userID uint, delta int64) error {
	result := repo.database.Model(&models.User{}).
		Where("id = ? AND points + ? >= 0", userID, delta).
		Update("points", gorm.Expr("points + ?", delta))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var matched int64
		if err := repo.database.Model(&models.User{}).Where("id = ?", userID).Count(&matched).Error; err != nil {
			return err
		}
		if matched == 0 {
			return gorm.ErrRecordNotFound
		}
		return ErrInsufficientPoints
	}
	return nil
}

func (repo *UserRepository) PointsBalance(userID uint) (int64, error) {
	var user models.User
	if err := repo.database.Select("points").First(&user, userID).Error; err != nil {
		return 0, err
	}
	return user.Points, nil
}

// SetBadgeUnlocked is idempotent: setting an already-set flag changes nothing.
func (repo *UserRepository) SetBadgeUnlocked(userID uint, unlocked bool) error {
	return repo.database.Model(&models.User{}).Where("id = ?", userID).
		Update("cycle_badge_unlocked", unlocked).Error
}
