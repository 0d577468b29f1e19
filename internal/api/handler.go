package api

import (
	"time"

	"github.com/ananyaa-sutaria/ThinkPink-sub000/internal/db"
	"github.com/ananyaa-sutaria/ThinkPink-sub000/internal/services"
	"github.com/ananyaa-sutaria/ThinkPink-sub000/internal/settlement"
	"github.com/ananyaa-sutaria/ThinkPink-sub000/internal/storage"
	"gorm.io/gorm"
)

type Handler struct {
	db         *gorm.DB
	secretKey  []byte
	adminToken string
	location   *time.Location
	photos     storage.PhotoStore

	repositories      *db.Repositories
	dayService        *services.DayService
	ledgerService     *services.LedgerService
	quizService       *services.QuizService
	challengeService  *services.ChallengeService
	donationService   *services.DonationService
	rewardService     *services.RewardService
	badgeService      *services.BadgeService
	governanceService *services.GovernanceService
}

func NewHandler(database *gorm.DB, secret string, adminToken string, location *time.Location, settle settlement.Service, photos storage.PhotoStore) *Handler {
	if location == nil {
		location = time.UTC
	}

	handler := &Handler{
		db:         database,
		secretKey:  []byte(secret),
		adminToken: adminToken,
		location:   location,
		photos:     photos,
	}
	return handler.withDependencies(settle)
}

func (handler *Handler) withDependencies(settle settlement.Service) *Handler {
	handler.repositories = db.NewRepositories(handler.db)
	handler.dayService = services.NewDayService(handler.repositories.DailyLogs)
	handler.ledgerService = services.NewLedgerService(handler.repositories.Users, handler.repositories.Progress)
	handler.quizService = services.NewQuizService(handler.ledgerService)
	handler.challengeService = services.NewChallengeService(handler.ledgerService)
	handler.donationService = services.NewDonationService(handler.repositories.Donations, handler.ledgerService, settle)
	handler.rewardService = services.NewRewardService(handler.ledgerService, walletReader{handler.repositories.Users}, settle)
	handler.badgeService = services.NewBadgeService(handler.repositories.Users, handler.repositories.Badges, settle)
	handler.governanceService = services.NewGovernanceService(handler.repositories.Proposals, handler.repositories.Users)
	return handler
}

func (handler *Handler) Donations() *services.DonationService {
	return handler.donationService
}

// walletReader adapts the user repository to the reward service's narrow
// read interface.
type walletReader struct {
	users *db.UserRepository
}

func (reader walletReader) PointsBalance(userID uint) (int64, error) {
	return reader.users.PointsBalance(userID)
}

func (reader walletReader) WalletFor(userID uint) (string, error) {
	user, err := reader.users.FindByID(userID)
	if err != nil {
		return "", err
	}
	return user.WalletAddress, nil
}
