package services

import "time"

const (
	PhaseMenstrual  = "menstrual"
	PhaseFollicular = "follicular"
	PhaseOvulation  = "ovulation"
	PhaseLuteal     = "luteal"
	PhaseUnknown    = "unknown"
)

// ModelCycleLength is the fixed 28-day model used for estimates. The
// bucketing below is a fixed lookup, not a user setting.
const ModelCycleLength = 28

// CycleAnchor seeds the fixed-anchor model used when no period start has
// been logged yet (guest mode, fresh accounts).
var CycleAnchor = time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)

type CycleEstimate struct {
	CycleDay int    `json:"cycle_day"`
	Phase    string `json:"phase"`
}

// Estimate maps a target date and the most recent known period start to a
// cycle day and phase. A missing or unusable period start falls back to
// the fixed-anchor model; it never fails.
func Estimate(target time.Time, lastPeriodStart *time.Time) CycleEstimate {
	if target.IsZero() {
		return CycleEstimate{CycleDay: 1, Phase: PhaseUnknown}
	}

	day := dateOnly(target)
	if lastPeriodStart != nil && !lastPeriodStart.IsZero() {
		start := dateOnly(*lastPeriodStart)
		if !day.Before(start) {
			cycleDay := daysBetween(start, day) + 1
			return CycleEstimate{CycleDay: cycleDay, Phase: phaseForDay(cycleDay)}
		}
	}

	return EstimateFromAnchor(day)
}

// EstimateFromAnchor assigns a cycle day from the fixed anchor date, so
// two queries for the same date always agree regardless of user data.
func EstimateFromAnchor(target time.Time) CycleEstimate {
	if target.IsZero() {
		return CycleEstimate{CycleDay: 1, Phase: PhaseUnknown}
	}
	day := dateOnly(target)
	sinceAnchor := daysBetween(dateOnly(CycleAnchor), day)
	cycleDay := ((sinceAnchor%ModelCycleLength)+ModelCycleLength)%ModelCycleLength + 1
	return CycleEstimate{CycleDay: cycleDay, Phase: phaseForDay(cycleDay)}
}

func phaseForDay(cycleDay int) string {
	switch {
	case cycleDay < 1:
		return PhaseUnknown
	case cycleDay <= 5:
		return PhaseMenstrual
	case cycleDay <= 13:
		return PhaseFollicular
	case cycleDay <= 16:
		return PhaseOvulation
	default:
		// Days past 28 stay luteal until the next logged period start.
		return PhaseLuteal
	}
}

func daysBetween(from time.Time, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
