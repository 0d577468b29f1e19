package services

import (
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/ananyaa-sutaria/ThinkPink-sub000/internal/models"
)

type dayLogRepoStub struct {
	entries map[uint]map[string]models.DailyLog
	nextID  uint
}

func newDayLogRepoStub() *dayLogRepoStub {
	return &dayLogRepoStub{entries: make(map[uint]map[string]models.DailyLog), nextID: 1}
}

func dayStubKey(value time.Time) string {
	return value.Format("2006-01-02")
}

func (stub *dayLogRepoStub) sorted(userID uint) []models.DailyLog {
	logs := make([]models.DailyLog, 0)
	for _, entry := range stub.entries[userID] {
		logs = append(logs, entry)
	}
	sort.Slice(logs, func(i, j int) bool { return logs[i].Date.Before(logs[j].Date) })
	return logs
}

func (stub *dayLogRepoStub) ListRecent(userID uint, limit int) ([]models.DailyLog, error) {
	logs := stub.sorted(userID)
	for i, j := 0, len(logs)-1; i < j; i, j = i+1, j-1 {
		logs[i], logs[j] = logs[j], logs[i]
	}
	if len(logs) > limit {
		logs = logs[:limit]
	}
	return logs, nil
}

func (stub *dayLogRepoStub) ListByUserRange(userID uint, fromStart time.Time, toEnd time.Time) ([]models.DailyLog, error) {
	logs := make([]models.DailyLog, 0)
	for _, entry := range stub.sorted(userID) {
		if !entry.Date.Before(fromStart) && entry.Date.Before(toEnd) {
			logs = append(logs, entry)
		}
	}
	return logs, nil
}

func (stub *dayLogRepoStub) FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.DailyLog, bool, error) {
	entry, ok := stub.entries[userID][dayStubKey(dayStart)]
	return entry, ok, nil
}

func (stub *dayLogRepoStub) LatestPeriodStart(userID uint) (models.DailyLog, bool, error) {
	logs := stub.sorted(userID)
	for i := len(logs) - 1; i >= 0; i-- {
		if logs[i].PeriodStart {
			return logs[i], true, nil
		}
	}
	return models.DailyLog{}, false, nil
}

func (stub *dayLogRepoStub) Create(entry *models.DailyLog) error {
	entry.ID = stub.nextID
	stub.nextID++
	userEntries, ok := stub.entries[entry.UserID]
	if !ok {
		userEntries = make(map[string]models.DailyLog)
		stub.entries[entry.UserID] = userEntries
	}
	key := dayStubKey(entry.Date)
	if _, exists := userEntries[key]; exists {
		return errors.New("unique constraint violated")
	}
	userEntries[key] = *entry
	return nil
}

func (stub *dayLogRepoStub) Save(entry *models.DailyLog) error {
	stub.entries[entry.UserID][dayStubKey(entry.Date)] = *entry
	return nil
}

func TestSaveDayUpsertsSingleEntry(t *testing.T) {
	repo := newDayLogRepoStub()
	service := NewDayService(repo)
	day := time.Date(2026, time.March, 10, 15, 30, 0, 0, time.UTC)

	first, err := service.SaveDay(1, day, DayEntryInput{Mood: 3, Energy: 4, Notes: "first"})
	if err != nil {
		t.Fatalf("first SaveDay() unexpected error: %v", err)
	}
	if !first.Date.Equal(time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("entry date not truncated to the day: %v", first.Date)
	}

	second, err := service.SaveDay(1, day.Add(2*time.Hour), DayEntryInput{Mood: 5, Energy: 2, PeriodStart: true, Notes: "second"})
	if err != nil {
		t.Fatalf("second SaveDay() unexpected error: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("second save created a new record: ids %d and %d", first.ID, second.ID)
	}
	if second.Mood != 5 || second.Notes != "second" || !second.PeriodStart {
		t.Fatalf("second save did not overwrite fields: %+v", second)
	}

	if len(repo.entries[1]) != 1 {
		t.Fatalf("expected one stored entry for the day, got %d", len(repo.entries[1]))
	}
}

func TestSaveDayValidatesMoodAndEnergy(t *testing.T) {
	service := NewDayService(newDayLogRepoStub())
	day := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)

	if _, err := service.SaveDay(1, day, DayEntryInput{Mood: 0, Energy: 3}); !errors.Is(err, ErrInvalidMood) {
		t.Fatalf("expected ErrInvalidMood, got %v", err)
	}
	if _, err := service.SaveDay(1, day, DayEntryInput{Mood: 3, Energy: 6}); !errors.Is(err, ErrInvalidEnergy) {
		t.Fatalf("expected ErrInvalidEnergy, got %v", err)
	}
}

func TestFetchRecentClampsLimit(t *testing.T) {
	repo := newDayLogRepoStub()
	service := NewDayService(repo)
	day := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 40; i++ {
		if _, err := service.SaveDay(1, day.AddDate(0, 0, i), DayEntryInput{Mood: 3, Energy: 3}); err != nil {
			t.Fatalf("SaveDay() unexpected error: %v", err)
		}
	}

	entries, err := service.FetchRecent(1, 0)
	if err != nil {
		t.Fatalf("FetchRecent() unexpected error: %v", err)
	}
	if len(entries) != defaultRecentLimit {
		t.Fatalf("default fetch returned %d entries, want %d", len(entries), defaultRecentLimit)
	}
	if !entries[0].Date.After(entries[len(entries)-1].Date) {
		t.Fatal("recent entries should come newest first")
	}
}

func TestEstimateForPrefersLoggedPeriodStart(t *testing.T) {
	repo := newDayLogRepoStub()
	service := NewDayService(repo)
	start := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)

	if _, err := service.SaveDay(1, start, DayEntryInput{Mood: 3, Energy: 3, PeriodStart: true}); err != nil {
		t.Fatalf("SaveDay() unexpected error: %v", err)
	}

	estimate, err := service.EstimateFor(1, start.AddDate(0, 0, 6))
	if err != nil {
		t.Fatalf("EstimateFor() unexpected error: %v", err)
	}
	if estimate.CycleDay != 7 || estimate.Phase != PhaseFollicular {
		t.Fatalf("estimate = %+v, want day 7 follicular", estimate)
	}

	// Without a logged start the anchor model answers instead of failing.
	estimate, err = service.EstimateFor(2, start)
	if err != nil {
		t.Fatalf("EstimateFor() without data unexpected error: %v", err)
	}
	if estimate != EstimateFromAnchor(start) {
		t.Fatalf("estimate without data = %+v, want anchor fallback", estimate)
	}
}
