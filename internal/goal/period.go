// Package goal holds the goal periods and actions accepted by "timelog goal".
package goal

import (
	"errors"
	"time"
)

// ErrInvalidPeriod is returned for any token other than the recognised periods.
var ErrInvalidPeriod = errors.New("invalid goal period\n" +
	"valid period values: month, week, day, sunday, monday, tuesday, wednesday, thursday, friday, saturday.")

// PeriodKind distinguishes the recurrence units a goal can apply to.
type PeriodKind int

const (
	PeriodMonth PeriodKind = iota + 1
	PeriodWeek
	PeriodDay
	PeriodWeekday
)

// Period is a goal recurrence unit. Weekday is only meaningful for PeriodWeekday.
type Period struct {
	Kind    PeriodKind
	Weekday time.Weekday
}

var (
	Month = Period{Kind: PeriodMonth}
	Week  = Period{Kind: PeriodWeek}
	Day   = Period{Kind: PeriodDay}
)

// Weekday returns the period for one specific day of the week.
func Weekday(d time.Weekday) Period {
	return Period{Kind: PeriodWeekday, Weekday: d}
}

var periodTokens = map[string]Period{
	"month":     Month,
	"week":      Week,
	"day":       Day,
	"sunday":    Weekday(time.Sunday),
	"monday":    Weekday(time.Monday),
	"tuesday":   Weekday(time.Tuesday),
	"wednesday": Weekday(time.Wednesday),
	"thursday":  Weekday(time.Thursday),
	"friday":    Weekday(time.Friday),
	"saturday":  Weekday(time.Saturday),
}

// ParsePeriod maps a lowercase period token to its Period. Input is matched
// exactly; no trimming or case folding is applied.
func ParsePeriod(s string) (Period, error) {
	p, ok := periodTokens[s]
	if !ok {
		return Period{}, ErrInvalidPeriod
	}
	return p, nil
}

// String returns the token ParsePeriod accepts for p.
func (p Period) String() string {
	switch p.Kind {
	case PeriodMonth:
		return "month"
	case PeriodWeek:
		return "week"
	case PeriodDay:
		return "day"
	case PeriodWeekday:
		switch p.Weekday {
		case time.Sunday:
			return "sunday"
		case time.Monday:
			return "monday"
		case time.Tuesday:
			return "tuesday"
		case time.Wednesday:
			return "wednesday"
		case time.Thursday:
			return "thursday"
		case time.Friday:
			return "friday"
		case time.Saturday:
			return "saturday"
		}
	}
	return "unknown"
}

// Periods lists every period in display order.
func Periods() []Period {
	return []Period{
		Month, Week, Day,
		Weekday(time.Monday), Weekday(time.Tuesday), Weekday(time.Wednesday),
		Weekday(time.Thursday), Weekday(time.Friday), Weekday(time.Saturday),
		Weekday(time.Sunday),
	}
}
