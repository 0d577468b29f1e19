package models

import "time"

const (
	BadgeCycleGuardian = "cycle_guardian"
	BadgeDonationHero  = "donation_hero"
)

// BadgeMint mirrors a settlement receipt. One badge per wallet: the
// unique (wallet, badge) pair makes repeat mint requests idempotent.
type BadgeMint struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	WalletAddress string    `gorm:"not null;uniqueIndex:uidx_wallet_badge" json:"wallet_address"`
	BadgeID       string    `gorm:"not null;uniqueIndex:uidx_wallet_badge" json:"badge_id"`
	Signature     string    `gorm:"not null" json:"signature"`
	ExplorerURL   string    `gorm:"type:text" json:"explorer_url"`
	AwardedAt     time.Time `gorm:"not null" json:"awarded_at"`
}

// PointsMint records the fungible token mint backing point balances.
type PointsMint struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	MintAddress string    `gorm:"uniqueIndex;not null" json:"mint_address"`
	Authority   string    `gorm:"not null" json:"authority"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
}
