package models

import "time"

const (
	DonationStatusPending  = "pending"
	DonationStatusApproved = "approved"
	DonationStatusRejected = "rejected"
)

// DonationSubmission is reviewed by an admin. The status moves away from
// pending exactly once; PointsAwarded guards against a double credit when
// an already-approved record is approved again.
type DonationSubmission struct {
	ID            string     `gorm:"primaryKey" json:"id"`
	UserID        uint       `gorm:"not null;index" json:"user_id"`
	WalletAddress string     `gorm:"not null" json:"wallet_address"`
	Location      string     `json:"location"`
	PhotoURL      string     `gorm:"type:text" json:"photo_url"`
	ProofHash     string     `gorm:"not null" json:"proof_hash"`
	Status        string     `gorm:"not null;default:pending;index" json:"status"`
	PointsAwarded bool       `gorm:"not null;default:false" json:"points_awarded"`
	MintSignature string     `json:"mint_signature,omitempty"`
	CreatedAt     time.Time  `gorm:"not null" json:"created_at"`
	ReviewedAt    *time.Time `json:"reviewed_at,omitempty"`
}
