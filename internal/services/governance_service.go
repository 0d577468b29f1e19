package services

import (
	"errors"
	"strings"
	"time"

	"github.com/ananyaa-sutaria/ThinkPink-sub000/internal/models"
)

var (
	ErrProposalNotFound   = errors.New("proposal not found")
	ErrProposalClosed     = errors.New("proposal is closed")
	ErrAlreadyVoted       = errors.New("already voted on this proposal")
	ErrInvalidVoteChoice  = errors.New("vote choice must be yes or no")
	ErrNoVotingPower      = errors.New("a positive point balance is required")
	ErrInvalidProposal    = errors.New("proposal needs a title and a future closing time")
	ErrProposalLoadFailed = errors.New("load proposal failed")
)

type GovernanceRepository interface {
	Create(proposal *models.Proposal) error
	FindByID(proposalID uint) (models.Proposal, error)
	List() ([]models.Proposal, error)
	RecordVote(vote *models.ProposalVote) (bool, error)
	TallyVotes(proposalID uint) (map[string]int64, error)
}

type GovernanceBalanceReader interface {
	PointsBalance(userID uint) (int64, error)
}

type GovernanceService struct {
	proposals GovernanceRepository
	balances  GovernanceBalanceReader
}

func NewGovernanceService(proposals GovernanceRepository, balances GovernanceBalanceReader) *GovernanceService {
	return &GovernanceService{proposals: proposals, balances: balances}
}

// CreateProposal requires a positive point balance, mirroring the token
// gate on voting.
func (service *GovernanceService) CreateProposal(userID uint, title string, description string, closesAt time.Time, now time.Time) (models.Proposal, error) {
	if strings.TrimSpace(title) == "" || !closesAt.After(now) {
		return models.Proposal{}, ErrInvalidProposal
	}

	balance, err := service.balances.PointsBalance(userID)
	if err != nil {
		return models.Proposal{}, err
	}
	if balance <= 0 {
		return models.Proposal{}, ErrNoVotingPower
	}

	proposal := models.Proposal{
		Title:       strings.TrimSpace(title),
		Description: description,
		CreatorID:   userID,
		ClosesAt:    closesAt,
		CreatedAt:   now,
	}
	if err := service.proposals.Create(&proposal); err != nil {
		return models.Proposal{}, err
	}
	return proposal, nil
}

type ProposalView struct {
	models.Proposal
	Closed bool             `json:"closed"`
	Tally  map[string]int64 `json:"tally"`
}

func (service *GovernanceService) ListProposals(now time.Time) ([]ProposalView, error) {
	proposals, err := service.proposals.List()
	if err != nil {
		return nil, errors.Join(ErrProposalLoadFailed, err)
	}

	views := make([]ProposalView, 0, len(proposals))
	for _, proposal := range proposals {
		tally, err := service.proposals.TallyVotes(proposal.ID)
		if err != nil {
			return nil, errors.Join(ErrProposalLoadFailed, err)
		}
		views = append(views, ProposalView{
			Proposal: proposal,
			Closed:   proposal.ClosedAt(now),
			Tally:    tally,
		})
	}
	return views, nil
}

// Vote records one vote per user per proposal, weighted by the voter's
// current point balance. Closed proposals and zero balances are state
// conflicts, not failures.
func (service *GovernanceService) Vote(userID uint, proposalID uint, choice string, now time.Time) (models.ProposalVote, error) {
	choice = strings.ToLower(strings.TrimSpace(choice))
	if choice != models.VoteChoiceYes && choice != models.VoteChoiceNo {
		return models.ProposalVote{}, ErrInvalidVoteChoice
	}

	proposal, err := service.proposals.FindByID(proposalID)
	if err != nil {
		return models.ProposalVote{}, ErrProposalNotFound
	}
	if proposal.ClosedAt(now) {
		return models.ProposalVote{}, ErrProposalClosed
	}

	balance, err := service.balances.PointsBalance(userID)
	if err != nil {
		return models.ProposalVote{}, err
	}
	if balance <= 0 {
		return models.ProposalVote{}, ErrNoVotingPower
	}

	vote := models.ProposalVote{
		ProposalID: proposalID,
		UserID:     userID,
		Choice:     choice,
		Weight:     balance,
		CreatedAt:  now,
	}
	recorded, err := service.proposals.RecordVote(&vote)
	if err != nil {
		return models.ProposalVote{}, err
	}
	if !recorded {
		return models.ProposalVote{}, ErrAlreadyVoted
	}
	return vote, nil
}
