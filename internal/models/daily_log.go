package models

import "time"

const (
	MoodMin   = 1
	MoodMax   = 5
	EnergyMin = 1
	EnergyMax = 5
)

type DailyLog struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;uniqueIndex:uidx_user_date" json:"user_id"`
	Date        time.Time `gorm:"type:date;not null;uniqueIndex:uidx_user_date" json:"date"`
	PeriodStart bool      `gorm:"not null;default:false" json:"period_start"`
	PeriodEnd   bool      `gorm:"not null;default:false" json:"period_end"`
	Spotting    bool      `gorm:"not null;default:false" json:"spotting"`
	Mood        int       `gorm:"not null;default:3" json:"mood"`
	Energy      int       `gorm:"not null;default:3" json:"energy"`
	Symptoms    []string  `gorm:"serializer:json" json:"symptoms"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
