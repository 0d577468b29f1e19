package services

import (
	"errors"
	"strings"
	"sync"
	"time"
)

var (
	ErrQuizLevelNotFound    = errors.New("quiz level not found")
	ErrNoActiveAttempt      = errors.New("no active quiz attempt")
	ErrUnansweredQuestions  = errors.New("all questions must be answered")
	ErrAttemptAlreadyScored = errors.New("attempt already submitted")
)

type attemptState int

const (
	attemptInProgress attemptState = iota
	attemptSubmitted
)

// quizAttempt is ephemeral: it lives only for the duration of one quiz
// session and is never persisted.
type quizAttempt struct {
	LevelID   string
	State     attemptState
	StartedAt time.Time
}

type QuizLedger interface {
	RecordLevelCompletion(userID uint, levelID string, reward int64, now time.Time) (bool, error)
	SetBadgeUnlocked(userID uint, unlocked bool) error
}

type QuizService struct {
	ledger QuizLedger

	mu       sync.Mutex
	attempts map[uint]*quizAttempt
}

func NewQuizService(ledger QuizLedger) *QuizService {
	return &QuizService{
		ledger:   ledger,
		attempts: make(map[uint]*quizAttempt),
	}
}

// Start opens a fresh attempt for the level, discarding any previous
// attempt state for the user.
func (service *QuizService) Start(userID uint, topic string, level int, now time.Time) (QuizLevel, error) {
	quizLevel, found := FindQuizLevel(topic, level)
	if !found {
		return QuizLevel{}, ErrQuizLevelNotFound
	}

	service.mu.Lock()
	service.attempts[userID] = &quizAttempt{
		LevelID:   quizLevel.ID,
		State:     attemptInProgress,
		StartedAt: now,
	}
	service.mu.Unlock()

	return quizLevel, nil
}

type QuizSubmitResult struct {
	LevelID       string `json:"level_id"`
	Score         int    `json:"score"`
	Total         int    `json:"total"`
	Passed        bool   `json:"passed"`
	PointsAwarded bool   `json:"points_awarded"`
	BadgeUnlocked bool   `json:"badge_unlocked"`
}

// Submit scores the attempt against the answer key. A blank answer leaves
// the attempt in progress and reports a validation error; a scored attempt
// is terminal until the next Start.
func (service *QuizService) Submit(userID uint, topic string, level int, answers map[string]string, now time.Time) (QuizSubmitResult, error) {
	quizLevel, found := FindQuizLevel(topic, level)
	if !found {
		return QuizSubmitResult{}, ErrQuizLevelNotFound
	}

	service.mu.Lock()
	attempt, active := service.attempts[userID]
	if !active || attempt.LevelID != quizLevel.ID {
		service.mu.Unlock()
		return QuizSubmitResult{}, ErrNoActiveAttempt
	}
	if attempt.State == attemptSubmitted {
		service.mu.Unlock()
		return QuizSubmitResult{}, ErrAttemptAlreadyScored
	}

	for _, question := range quizLevel.Questions {
		if strings.TrimSpace(answers[question.ID]) == "" {
			service.mu.Unlock()
			return QuizSubmitResult{}, ErrUnansweredQuestions
		}
	}
	attempt.State = attemptSubmitted
	service.mu.Unlock()

	score := 0
	for _, question := range quizLevel.Questions {
		if strings.EqualFold(strings.TrimSpace(answers[question.ID]), question.Correct) {
			score++
		}
	}

	result := QuizSubmitResult{
		LevelID: quizLevel.ID,
		Score:   score,
		Total:   len(quizLevel.Questions),
		Passed:  score >= QuizPassThreshold,
	}
	if !result.Passed {
		return result, nil
	}

	firstPass, err := service.ledger.RecordLevelCompletion(userID, quizLevel.ID, quizLevel.Reward, now)
	if err != nil {
		return result, err
	}
	result.PointsAwarded = firstPass

	if quizLevel.GatesBadge {
		if err := service.ledger.SetBadgeUnlocked(userID, true); err != nil {
			return result, err
		}
		result.BadgeUnlocked = true
	}

	return result, nil
}

// InProgress reports whether the user has an open attempt for the level.
func (service *QuizService) InProgress(userID uint, topic string, level int) bool {
	quizLevel, found := FindQuizLevel(topic, level)
	if !found {
		return false
	}
	service.mu.Lock()
	defer service.mu.Unlock()
	attempt, active := service.attempts[userID]
	return active && attempt.LevelID == quizLevel.ID && attempt.State == attemptInProgress
}
