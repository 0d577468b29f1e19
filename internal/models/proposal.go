package models

import "time"

const (
	VoteChoiceYes = "yes"
	VoteChoiceNo  = "no"
)

type Proposal struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	CreatorID   uint      `gorm:"not null;index" json:"creator_id"`
	ClosesAt    time.Time `gorm:"not null" json:"closes_at"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
}

func (p *Proposal) ClosedAt(now time.Time) bool {
	return !now.Before(p.ClosesAt)
}

type ProposalVote struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ProposalID uint      `gorm:"not null;uniqueIndex:uidx_proposal_voter" json:"proposal_id"`
	UserID     uint      `gorm:"not null;uniqueIndex:uidx_proposal_voter" json:"user_id"`
	Choice     string    `gorm:"not null" json:"choice"`
	Weight     int64     `gorm:"not null" json:"weight"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
}
