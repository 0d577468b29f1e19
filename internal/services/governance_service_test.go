package services

import (
	"errors"
	"testing"
	"time"

	"github.com/ananyaa-sutaria/ThinkPink-sub000/internal/models"
)

type governanceRepoStub struct {
	proposals map[uint]*models.Proposal
	votes     map[uint]map[uint]models.ProposalVote
	nextID    uint
}

func newGovernanceRepoStub() *governanceRepoStub {
	return &governanceRepoStub{
		proposals: make(map[uint]*models.Proposal),
		votes:     make(map[uint]map[uint]models.ProposalVote),
		nextID:    1,
	}
}

func (stub *governanceRepoStub) Create(proposal *models.Proposal) error {
	proposal.ID = stub.nextID
	stub.nextID++
	copied := *proposal
	stub.proposals[proposal.ID] = &copied
	return nil
}

func (stub *governanceRepoStub) FindByID(proposalID uint) (models.Proposal, error) {
	proposal, ok := stub.proposals[proposalID]
	if !ok {
		return models.Proposal{}, errors.New("not found")
	}
	return *proposal, nil
}

func (stub *governanceRepoStub) List() ([]models.Proposal, error) {
	list := make([]models.Proposal, 0)
	for _, proposal := range stub.proposals {
		list = append(list, *proposal)
	}
	return list, nil
}

func (stub *governanceRepoStub) RecordVote(vote *models.ProposalVote) (bool, error) {
	byVoter, ok := stub.votes[vote.ProposalID]
	if !ok {
		byVoter = make(map[uint]models.ProposalVote)
		stub.votes[vote.ProposalID] = byVoter
	}
	if _, voted := byVoter[vote.UserID]; voted {
		return false, nil
	}
	byVoter[vote.UserID] = *vote
	return true, nil
}

func (stub *governanceRepoStub) TallyVotes(proposalID uint) (map[string]int64, error) {
	tally := make(map[string]int64)
	for _, vote := range stub.votes[proposalID] {
		tally[vote.Choice] += vote.Weight
	}
	return tally, nil
}

type balanceReaderStub struct {
	balances map[uint]int64
}

func (stub *balanceReaderStub) PointsBalance(userID uint) (int64, error) {
	return stub.balances[userID], nil
}

func TestCreateProposalRequirements(t *testing.T) {
	repo := newGovernanceRepoStub()
	balances := &balanceReaderStub{balances: map[uint]int64{1: 50, 2: 0}}
	service := NewGovernanceService(repo, balances)
	now := time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC)

	if _, err := service.CreateProposal(1, "  ", "", now.Add(time.Hour), now); !errors.Is(err, ErrInvalidProposal) {
		t.Fatalf("expected ErrInvalidProposal for blank title, got %v", err)
	}
	if _, err := service.CreateProposal(1, "Fund clinics", "", now.Add(-time.Hour), now); !errors.Is(err, ErrInvalidProposal) {
		t.Fatalf("expected ErrInvalidProposal for past close, got %v", err)
	}
	if _, err := service.CreateProposal(2, "Fund clinics", "", now.Add(time.Hour), now); !errors.Is(err, ErrNoVotingPower) {
		t.Fatalf("expected ErrNoVotingPower for zero balance, got %v", err)
	}

	proposal, err := service.CreateProposal(1, " Fund clinics ", "details", now.Add(time.Hour), now)
	if err != nil {
		t.Fatalf("CreateProposal() unexpected error: %v", err)
	}
	if proposal.Title != "Fund clinics" {
		t.Fatalf("title not trimmed: %q", proposal.Title)
	}
}

func TestVoteWeightAndDuplicates(t *testing.T) {
	repo := newGovernanceRepoStub()
	balances := &balanceReaderStub{balances: map[uint]int64{1: 50, 2: 30}}
	service := NewGovernanceService(repo, balances)
	now := time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC)

	proposal, err := service.CreateProposal(1, "Fund clinics", "", now.Add(24*time.Hour), now)
	if err != nil {
		t.Fatalf("CreateProposal() unexpected error: %v", err)
	}

	vote, err := service.Vote(1, proposal.ID, " YES ", now)
	if err != nil {
		t.Fatalf("Vote() unexpected error: %v", err)
	}
	if vote.Weight != 50 || vote.Choice != models.VoteChoiceYes {
		t.Fatalf("vote = %+v, want yes with weight 50", vote)
	}

	if _, err := service.Vote(1, proposal.ID, "no", now); !errors.Is(err, ErrAlreadyVoted) {
		t.Fatalf("expected ErrAlreadyVoted, got %v", err)
	}
	if _, err := service.Vote(2, proposal.ID, "maybe", now); !errors.Is(err, ErrInvalidVoteChoice) {
		t.Fatalf("expected ErrInvalidVoteChoice, got %v", err)
	}

	if _, err := service.Vote(2, proposal.ID, "no", now); err != nil {
		t.Fatalf("second voter unexpected error: %v", err)
	}

	views, err := service.ListProposals(now)
	if err != nil {
		t.Fatalf("ListProposals() unexpected error: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("got %d proposals, want 1", len(views))
	}
	if views[0].Tally[models.VoteChoiceYes] != 50 || views[0].Tally[models.VoteChoiceNo] != 30 {
		t.Fatalf("tally = %v, want yes 50 / no 30", views[0].Tally)
	}
}

func TestVoteOnClosedProposalConflicts(t *testing.T) {
	repo := newGovernanceRepoStub()
	balances := &balanceReaderStub{balances: map[uint]int64{1: 50}}
	service := NewGovernanceService(repo, balances)
	now := time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC)

	proposal, err := service.CreateProposal(1, "Fund clinics", "", now.Add(time.Hour), now)
	if err != nil {
		t.Fatalf("CreateProposal() unexpected error: %v", err)
	}

	if _, err := service.Vote(1, proposal.ID, "yes", now.Add(time.Hour)); !errors.Is(err, ErrProposalClosed) {
		t.Fatalf("expected ErrProposalClosed at the closing instant, got %v", err)
	}

	views, _ := service.ListProposals(now.Add(2 * time.Hour))
	if !views[0].Closed {
		t.Fatal("proposal should list as closed after its closing time")
	}
}
