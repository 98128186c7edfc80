package catalog

import (
	"time"

	"github.com/jonathan/university-match/internal/types"
)

const (
	// deadlineLayout accepts month and day with or without zero padding.
	deadlineLayout = "2006-1-2"

	criticalDays = 7
	warningDays  = 30
)

// HasActiveDeadline reports whether p still has a deadline on or after asOf.
// Only the calendar date of asOf is considered. A program without deadlines is
// always active and returns nil date and days. A nil program is never active.
// Unparseable dates are ignored. When active, the earliest upcoming deadline
// and its distance in days are returned.
func HasActiveDeadline(p *types.ProgramRequirement, asOf time.Time) (bool, *string, *int) {
	if p == nil {
		return false, nil, nil
	}
	if len(p.Deadlines) == 0 {
		return true, nil, nil
	}

	today := dateOf(asOf)
	var (
		next     string
		nextDays = -1
	)
	for _, raw := range p.Deadlines {
		deadline, err := time.Parse(deadlineLayout, raw)
		if err != nil {
			continue
		}
		if deadline.Before(today) {
			continue
		}
		days := int(deadline.Sub(today).Hours() / 24)
		if nextDays < 0 || days < nextDays || (days == nextDays && raw < next) {
			next, nextDays = raw, days
		}
	}

	if nextDays < 0 {
		return false, nil, nil
	}
	return true, &next, &nextDays
}

// Urgency classifies the days remaining until a deadline.
func Urgency(daysRemaining *int) string {
	switch {
	case daysRemaining == nil:
		return types.UrgencyNormal
	case *daysRemaining <= criticalDays:
		return types.UrgencyCritical
	case *daysRemaining <= warningDays:
		return types.UrgencyWarning
	default:
		return types.UrgencyNormal
	}
}

// Status computes the full deadline status of p as of the given time.
func Status(p *types.ProgramRequirement, asOf time.Time) types.DeadlineStatus {
	active, next, days := HasActiveDeadline(p, asOf)
	return types.DeadlineStatus{
		HasActive:     active,
		NextDeadline:  next,
		DaysRemaining: days,
		Urgency:       Urgency(days),
	}
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
