package services

import (
	"errors"
	"time"

	"github.com/ananyaa-sutaria/ThinkPink-sub000/internal/models"
)

var (
	ErrInvalidMood          = errors.New("mood must be between 1 and 5")
	ErrInvalidEnergy        = errors.New("energy must be between 1 and 5")
	ErrDayEntryLoadFailed   = errors.New("load day entry failed")
	ErrDayEntryCreateFailed = errors.New("create day entry failed")
	ErrDayEntryUpdateFailed = errors.New("update day entry failed")
)

const (
	defaultRecentLimit = 30
	maxRecentLimit     = 366
)

type DayEntryInput struct {
	PeriodStart bool
	PeriodEnd   bool
	Spotting    bool
	Mood        int
	Energy      int
	Symptoms    []string
	Notes       string
}

type DayLogRepository interface {
	ListRecent(userID uint, limit int) ([]models.DailyLog, error)
	ListByUserRange(userID uint, fromStart time.Time, toEnd time.Time) ([]models.DailyLog, error)
	FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.DailyLog, bool, error)
	LatestPeriodStart(userID uint) (models.DailyLog, bool, error)
	Create(entry *models.DailyLog) error
	Save(entry *models.DailyLog) error
}

type DayService struct {
	logs DayLogRepository
}

func NewDayService(logs DayLogRepository) *DayService {
	return &DayService{logs: logs}
}

// SaveDay upserts the one entry allowed per (user, day). A second save for
// the same day overwrites every field of the first.
func (service *DayService) SaveDay(userID uint, day time.Time, input DayEntryInput) (models.DailyLog, error) {
	if input.Mood < models.MoodMin || input.Mood > models.MoodMax {
		return models.DailyLog{}, ErrInvalidMood
	}
	if input.Energy < models.EnergyMin || input.Energy > models.EnergyMax {
		return models.DailyLog{}, ErrInvalidEnergy
	}

	dayStart := dateOnly(day)
	dayEnd := dayStart.AddDate(0, 0, 1)
	symptoms := input.Symptoms
	if symptoms == nil {
		symptoms = []string{}
	}

	entry, found, err := service.logs.FindByUserAndDayRange(userID, dayStart, dayEnd)
	if err != nil {
		return models.DailyLog{}, errors.Join(ErrDayEntryLoadFailed, err)
	}

	if !found {
		entry = models.DailyLog{
			UserID:      userID,
			Date:        dayStart,
			PeriodStart: input.PeriodStart,
			PeriodEnd:   input.PeriodEnd,
			Spotting:    input.Spotting,
			Mood:        input.Mood,
			Energy:      input.Energy,
			Symptoms:    symptoms,
			Notes:       input.Notes,
		}
		if err := service.logs.Create(&entry); err != nil {
			return models.DailyLog{}, errors.Join(ErrDayEntryCreateFailed, err)
		}
		return entry, nil
	}

	entry.PeriodStart = input.PeriodStart
	entry.PeriodEnd = input.PeriodEnd
	entry.Spotting = input.Spotting
	entry.Mood = input.Mood
	entry.Energy = input.Energy
	entry.Symptoms = symptoms
	entry.Notes = input.Notes
	if err := service.logs.Save(&entry); err != nil {
		return models.DailyLog{}, errors.Join(ErrDayEntryUpdateFailed, err)
	}
	return entry, nil
}

func (service *DayService) FetchDay(userID uint, day time.Time) (models.DailyLog, bool, error) {
	dayStart := dateOnly(day)
	return service.logs.FindByUserAndDayRange(userID, dayStart, dayStart.AddDate(0, 0, 1))
}

func (service *DayService) FetchRecent(userID uint, limit int) ([]models.DailyLog, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}
	return service.logs.ListRecent(userID, limit)
}

func (service *DayService) FetchRange(userID uint, from time.Time, to time.Time) ([]models.DailyLog, error) {
	fromStart := dateOnly(from)
	toEnd := dateOnly(to).AddDate(0, 0, 1)
	return service.logs.ListByUserRange(userID, fromStart, toEnd)
}

// EstimateFor recomputes the cycle estimate from the latest logged period
// start. Estimates are derived on every read and never stored.
func (service *DayService) EstimateFor(userID uint, target time.Time) (CycleEstimate, error) {
	latest, found, err := service.logs.LatestPeriodStart(userID)
	if err != nil {
		return CycleEstimate{}, errors.Join(ErrDayEntryLoadFailed, err)
	}
	if !found {
		return Estimate(target, nil), nil
	}
	start := latest.Date
	return Estimate(target, &start), nil
}
