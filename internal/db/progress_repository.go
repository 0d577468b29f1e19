package db

import (
	"time"

	"github.com/ananyaa-sutaria/ThinkPink-sub000/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepository struct {
	database *gorm.DB
}

func NewProgressRepository(database *gorm.DB) *ProgressRepository {
	return &ProgressRepository{database: database}
}

// Each Add* inserts a set member with a conflict-ignoring insert. The
// returned bool reports whether the member was newly added, which is what
// gates the one-time point credit upstream.

func (repo *ProgressRepository) AddLevelCompletion(userID uint, levelID string, completedAt time.Time) (bool, error) {
	record := models.LevelCompletion{UserID: userID, LevelID: levelID, CompletedAt: completedAt}
	result := repo.database.Clauses(clause.OnConflict{DoNothing: true}).Create(&record)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (repo *ProgressRepository) AddArticleRead(userID uint, articleID string, readAt time.Time) (bool, error) {
	record := models.ArticleRead{UserID: userID, ArticleID: articleID, ReadAt: readAt}
	result := repo.database.Clauses(clause.OnConflict{DoNothing: true}).Create(&record)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (repo *ProgressRepository) AddChallengeCompletion(userID uint, day string, challengeID string, completedAt time.Time) (bool, error) {
	record := models.ChallengeCompletion{UserID: userID, Day: day, ChallengeID: challengeID, CompletedAt: completedAt}
	result := repo.database.Clauses(clause.OnConflict{DoNothing: true}).Create(&record)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (repo *ProgressRepository) ListLevelCompletions(userID uint) ([]models.LevelCompletion, error) {
	records := make([]models.LevelCompletion, 0)
	if err := repo.database.Where("user_id = ?", userID).Order("completed_at ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *ProgressRepository) ListArticleReads(userID uint) ([]models.ArticleRead, error) {
	records := make([]models.ArticleRead, 0)
	if err := repo.database.Where("user_id = ?", userID).Order("read_at ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *ProgressRepository) ListChallengeCompletions(userID uint, day string) ([]models.ChallengeCompletion, error) {
	records := make([]models.ChallengeCompletion, 0)
	query := repo.database.Where("user_id = ?", userID)
	if day != "" {
		query = query.Where("day = ?", day)
	}
	if err := query.Order("completed_at ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *ProgressRepository) HasLevelCompletion(userID uint, levelID string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.LevelCompletion{}).
		Where("user_id = ? AND level_id = ?", userID, levelID).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}
