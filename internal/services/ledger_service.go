package services

import (
	"errors"
	"time"

	"github.com/ananyaa-sutaria/ThinkPink-sub000/internal/db"
	"github.com/ananyaa-sutaria/ThinkPink-sub000/internal/models"
)

var (
	ErrInsufficientPoints = errors.New("insufficient points")
	ErrLedgerUpdateFailed = errors.New("ledger update failed")
)

// Fixed reward values. Points are credited from exactly one place per
// event; there is no shadow balance anywhere else.
const (
	ArticleReadReward    int64 = 10
	DailyChallengeReward int64 = 15
	DonationReward       int64 = 50
)

type LedgerUserRepository interface {
	FindByID(userID uint) (models.User, error)
	AddPoints(userID uint, delta int64) error
	PointsBalance(userID uint) (int64, error)
	SetBadgeUnlocked(userID uint, unlocked bool) error
}

type LedgerProgressRepository interface {
	AddLevelCompletion(userID uint, levelID string, completedAt time.Time) (bool, error)
	AddArticleRead(userID uint, articleID string, readAt time.Time) (bool, error)
	AddChallengeCompletion(userID uint, day string, challengeID string, completedAt time.Time) (bool, error)
	ListLevelCompletions(userID uint) ([]models.LevelCompletion, error)
	ListArticleReads(userID uint) ([]models.ArticleRead, error)
	ListChallengeCompletions(userID uint, day string) ([]models.ChallengeCompletion, error)
}

type LedgerService struct {
	users    LedgerUserRepository
	progress LedgerProgressRepository
}

func NewLedgerService(users LedgerUserRepository, progress LedgerProgressRepository) *LedgerService {
	return &LedgerService{users: users, progress: progress}
}

// AddPoints credits or debits the balance. The storage layer applies the
// delta atomically and rejects any debit that would underflow, leaving
// the balance unchanged.
func (service *LedgerService) AddPoints(userID uint, delta int64) error {
	err := service.users.AddPoints(userID, delta)
	if errors.Is(err, db.ErrInsufficientPoints) {
		return ErrInsufficientPoints
	}
	if err != nil {
		return errors.Join(ErrLedgerUpdateFailed, err)
	}
	return nil
}

func (service *LedgerService) Balance(userID uint) (int64, error) {
	return service.users.PointsBalance(userID)
}

func (service *LedgerService) SetBadgeUnlocked(userID uint, unlocked bool) error {
	return service.users.SetBadgeUnlocked(userID, unlocked)
}

// RecordLevelCompletion marks a level complete and credits its reward
// exactly once. Re-recording an already-completed level is a no-op for
// both the set and the balance.
func (service *LedgerService) RecordLevelCompletion(userID uint, levelID string, reward int64, now time.Time) (bool, error) {
	added, err := service.progress.AddLevelCompletion(userID, levelID, now)
	if err != nil {
		return false, errors.Join(ErrLedgerUpdateFailed, err)
	}
	if !added {
		return false, nil
	}
	if reward > 0 {
		if err := service.AddPoints(userID, reward); err != nil {
			return true, err
		}
	}
	return true, nil
}

func (service *LedgerService) RecordArticleRead(userID uint, articleID string, now time.Time) (bool, error) {
	added, err := service.progress.AddArticleRead(userID, articleID, now)
	if err != nil {
		return false, errors.Join(ErrLedgerUpdateFailed, err)
	}
	if !added {
		return false, nil
	}
	if err := service.AddPoints(userID, ArticleReadReward); err != nil {
		return true, err
	}
	return true, nil
}

func (service *LedgerService) RecordDailyChallenge(userID uint, day string, challengeID string, now time.Time) (bool, error) {
	added, err := service.progress.AddChallengeCompletion(userID, day, challengeID, now)
	if err != nil {
		return false, errors.Join(ErrLedgerUpdateFailed, err)
	}
	if !added {
		return false, nil
	}
	if err := service.AddPoints(userID, DailyChallengeReward); err != nil {
		return true, err
	}
	return true, nil
}

type ProgressSnapshot struct {
	Points              int64    `json:"points"`
	CycleBadgeUnlocked  bool     `json:"cycle_badge_unlocked"`
	CompletedLevels     []string `json:"completed_levels"`
	ReadArticles        []string `json:"read_articles"`
	CompletedChallenges []string `json:"completed_challenges_today"`
}

func (service *LedgerService) Snapshot(userID uint, today string) (ProgressSnapshot, error) {
	user, err := service.users.FindByID(userID)
	if err != nil {
		return ProgressSnapshot{}, err
	}

	levels, err := service.progress.ListLevelCompletions(userID)
	if err != nil {
		return ProgressSnapshot{}, err
	}
	articles, err := service.progress.ListArticleReads(userID)
	if err != nil {
		return ProgressSnapshot{}, err
	}
	challenges, err := service.progress.ListChallengeCompletions(userID, today)
	if err != nil {
		return ProgressSnapshot{}, err
	}

	snapshot := ProgressSnapshot{
		Points:              user.Points,
		CycleBadgeUnlocked:  user.CycleBadgeUnlocked,
		CompletedLevels:     make([]string, 0, len(levels)),
		ReadArticles:        make([]string, 0, len(articles)),
		CompletedChallenges: make([]string, 0, len(challenges)),
	}
	for _, level := range levels {
		snapshot.CompletedLevels = append(snapshot.CompletedLevels, level.LevelID)
	}
	for _, article := range articles {
		snapshot.ReadArticles = append(snapshot.ReadArticles, article.ArticleID)
	}
	for _, challenge := range challenges {
		snapshot.CompletedChallenges = append(snapshot.CompletedChallenges, challenge.ChallengeID)
	}
	return snapshot, nil
}
