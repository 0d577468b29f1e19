package models

import "time"

// Per-user achievement sets. Each row is one set member; the unique
// indexes make repeat inserts detectable so rewards credit at most once.

type LevelCompletion struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;uniqueIndex:uidx_user_level" json:"user_id"`
	LevelID     string    `gorm:"not null;uniqueIndex:uidx_user_level" json:"level_id"`
	CompletedAt time.Time `gorm:"not null" json:"completed_at"`
}

type ArticleRead struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:uidx_user_article" json:"user_id"`
	ArticleID string    `gorm:"not null;uniqueIndex:uidx_user_article" json:"article_id"`
	ReadAt    time.Time `gorm:"not null" json:"read_at"`
}

type ChallengeCompletion struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;uniqueIndex:uidx_user_day_challenge" json:"user_id"`
	Day         string    `gorm:"not null;uniqueIndex:uidx_user_day_challenge" json:"day"`
	ChallengeID string    `gorm:"not null;uniqueIndex:uidx_user_day_challenge" json:"challenge_id"`
	CompletedAt time.Time `gorm:"not null" json:"completed_at"`
}
