package services

import (
	"errors"
	"hash/fnv"
	"time"
)

var ErrChallengeNotToday = errors.New("challenge is not available today")

const challengesPerDay = 2

type DailyChallenge struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Reward      int64  `json:"reward"`
}

// DefaultDailyChallenges is the fixed challenge pool. Two entries are
// selected per calendar day for every user.
func DefaultDailyChallenges() []DailyChallenge {
	return []DailyChallenge{
		{ID: "log-today", Title: "Log your day", Description: "Save a daily log with mood and energy.", Reward: DailyChallengeReward},
		{ID: "hydrate", Title: "Hydration check", Description: "Drink eight glasses of water today.", Reward: DailyChallengeReward},
		{ID: "walk-20", Title: "Twenty-minute walk", Description: "Take a walk of at least twenty minutes.", Reward: DailyChallengeReward},
		{ID: "read-article", Title: "Learn something", Description: "Read one article from the library.", Reward: DailyChallengeReward},
		{ID: "sleep-8", Title: "Full night's sleep", Description: "Get eight hours of sleep tonight.", Reward: DailyChallengeReward},
		{ID: "stretch-10", Title: "Stretch break", Description: "Do ten minutes of stretching.", Reward: DailyChallengeReward},
		{ID: "symptom-note", Title: "Note a symptom", Description: "Record at least one symptom in today's log.", Reward: DailyChallengeReward},
		{ID: "screen-break", Title: "Screen-free hour", Description: "Spend one hour away from screens.", Reward: DailyChallengeReward},
	}
}

type ChallengeLedger interface {
	RecordDailyChallenge(userID uint, day string, challengeID string, now time.Time) (bool, error)
}

type ChallengeService struct {
	ledger ChallengeLedger
}

func NewChallengeService(ledger ChallengeLedger) *ChallengeService {
	return &ChallengeService{ledger: ledger}
}

// ChallengesForDay picks two challenges by a deterministic index derived
// from the date, so every user sees the same pair all day and repeated
// queries agree.
func ChallengesForDay(day time.Time) []DailyChallenge {
	pool := DefaultDailyChallenges()
	dayKey := dateOnly(day).Format("2006-01-02")

	hasher := fnv.New32a()
	_, _ = hasher.Write([]byte(dayKey))
	first := int(hasher.Sum32() % uint32(len(pool)))
	second := (first + 1 + int(hasher.Sum32()>>16)%(len(pool)-1)) % len(pool)

	return []DailyChallenge{pool[first], pool[second]}
}

// Complete credits a challenge once per (user, day, challenge). The
// challenge must be one of the day's two selections.
func (service *ChallengeService) Complete(userID uint, challengeID string, now time.Time) (bool, error) {
	todays := ChallengesForDay(now)
	valid := false
	for _, challenge := range todays {
		if challenge.ID == challengeID {
			valid = true
			break
		}
	}
	if !valid {
		return false, ErrChallengeNotToday
	}

	dayKey := dateOnly(now).Format("2006-01-02")
	return service.ledger.RecordDailyChallenge(userID, dayKey, challengeID, now)
}
