package db

import "gorm.io/gorm"

type Repositories struct {
	Users     *UserRepository
	DailyLogs *DailyLogRepository
	Progress  *ProgressRepository
	Donations *DonationRepository
	Badges    *BadgeRepository
	Proposals *ProposalRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:     NewUserRepository(database),
		DailyLogs: NewDailyLogRepository(database),
		Progress:  NewProgressRepository(database),
		Donations: NewDonationRepository(database),
		Badges:    NewBadgeRepository(database),
		Proposals: NewProposalRepository(database),
	}
}
