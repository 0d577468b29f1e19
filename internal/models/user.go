package models

import "time"

type User struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	Name               string    `gorm:"not null" json:"name"`
	Email              string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash       string    `gorm:"not null" json:"-"`
	WalletAddress      string    `gorm:"index" json:"wallet_address"`
	Points             int64     `gorm:"not null;default:0" json:"points"`
	CycleBadgeUnlocked bool      `gorm:"not null;default:false" json:"cycle_badge_unlocked"`
	CreatedAt          time.Time `gorm:"not null" json:"created_at"`
}
