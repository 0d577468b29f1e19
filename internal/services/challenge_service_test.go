package services

import (
	"errors"
	"testing"
	"time"
)

type challengeLedgerStub struct {
	completions map[string]bool
}

func (stub *challengeLedgerStub) RecordDailyChallenge(userID uint, day string, challengeID string, now time.Time) (bool, error) {
	key := day + "/" + challengeID
	if stub.completions[key] {
		return false, nil
	}
	stub.completions[key] = true
	return true, nil
}

func TestChallengesForDayIsDeterministic(t *testing.T) {
	day := time.Date(2026, time.May, 14, 0, 0, 0, 0, time.UTC)

	first := ChallengesForDay(day)
	second := ChallengesForDay(day.Add(23 * time.Hour))
	if len(first) != challengesPerDay {
		t.Fatalf("got %d challenges, want %d", len(first), challengesPerDay)
	}
	if first[0].ID != second[0].ID || first[1].ID != second[1].ID {
		t.Fatalf("same day selected different pairs: %v vs %v", first, second)
	}
	if first[0].ID == first[1].ID {
		t.Fatal("the two daily challenges must differ")
	}
}

func TestChallengesForDayAlwaysTwoDistinct(t *testing.T) {
	day := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 100; i++ {
		pair := ChallengesForDay(day)
		if len(pair) != challengesPerDay || pair[0].ID == pair[1].ID {
			t.Fatalf("bad pair on %s: %v", day.Format("2006-01-02"), pair)
		}
		day = day.AddDate(0, 0, 1)
	}
}

func TestCompleteRejectsChallengeNotSelectedToday(t *testing.T) {
	ledger := &challengeLedgerStub{completions: make(map[string]bool)}
	service := NewChallengeService(ledger)
	now := time.Date(2026, time.May, 14, 10, 0, 0, 0, time.UTC)

	todays := ChallengesForDay(now)
	selected := map[string]bool{todays[0].ID: true, todays[1].ID: true}

	var offToday string
	for _, challenge := range DefaultDailyChallenges() {
		if !selected[challenge.ID] {
			offToday = challenge.ID
			break
		}
	}

	if _, err := service.Complete(1, offToday, now); !errors.Is(err, ErrChallengeNotToday) {
		t.Fatalf("expected ErrChallengeNotToday, got %v", err)
	}
}

func TestCompleteCreditsOncePerDay(t *testing.T) {
	ledger := &challengeLedgerStub{completions: make(map[string]bool)}
	service := NewChallengeService(ledger)
	now := time.Date(2026, time.May, 14, 10, 0, 0, 0, time.UTC)
	challengeID := ChallengesForDay(now)[0].ID

	awarded, err := service.Complete(1, challengeID, now)
	if err != nil || !awarded {
		t.Fatalf("first completion = (%v, %v), want (true, nil)", awarded, err)
	}
	awarded, err = service.Complete(1, challengeID, now)
	if err != nil || awarded {
		t.Fatalf("repeat completion = (%v, %v), want (false, nil)", awarded, err)
	}
}
