package db

import (
	"github.com/ananyaa-sutaria/ThinkPink-sub000/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProposalRepository struct {
	database *gorm.DB
}

func NewProposalRepository(database *gorm.DB) *ProposalRepository {
	return &ProposalRepository{database: database}
}

func (repo *ProposalRepository) Create(proposal *models.Proposal) error {
	return repo.database.Create(proposal).Error
}

func (repo *ProposalRepository) FindByID(proposalID uint) (models.Proposal, error) {
	var proposal models.Proposal
	if err := repo.database.First(&proposal, proposalID).Error; err != nil {
		return models.Proposal{}, err
	}
	return proposal, nil
}

func (repo *ProposalRepository) List() ([]models.Proposal, error) {
	proposals := make([]models.Proposal, 0)
	if err := repo.database.Order("created_at DESC").Find(&proposals).Error; err != nil {
		return nil, err
	}
	return proposals, nil
}

// RecordVote inserts at most one vote per (proposal, user).
func (repo *ProposalRepository) RecordVote(vote *models.ProposalVote) (bool, error) {
	result := repo.database.Clauses(clause.OnConflict{DoNothing: true}).Create(vote)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (repo *ProposalRepository) TallyVotes(proposalID uint) (map[string]int64, error) {
	type tallyRow struct {
		Choice string
		Total  int64
	}
	rows := make([]tallyRow, 0)
	if err := repo.database.Model(&models.ProposalVote{}).
		Select("choice, SUM(weight) AS total").
		Where("proposal_id = ?", proposalID).
		Group("choice").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	tally := map[string]int64{
		models.VoteChoiceYes: 0,
		models.VoteChoiceNo:  0,
	}
	for _, row := range rows {
		tally[row.Choice] = row.Total
	}
	return tally, nil
}
