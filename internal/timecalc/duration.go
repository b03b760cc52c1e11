package timecalc

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"time"
)

// DurationError describes why a goal duration such as "8h 48m" was rejected.
type DurationError int

const (
	// ErrDurationFormat means the text is not of the form "<h>h <m>m".
	ErrDurationFormat DurationError = iota + 1
	// ErrDurationHours means the hour value is not a valid number.
	ErrDurationHours
	// ErrDurationMinutes means the minute value is not a valid number.
	ErrDurationMinutes
	// ErrDurationEmpty means neither hours nor minutes were given.
	ErrDurationEmpty
)

func (e DurationError) Error() string {
	switch e {
	case ErrDurationFormat:
		return "invalid duration format"
	case ErrDurationHours:
		return "invalid hour number"
	case ErrDurationMinutes:
		return "invalid minute number"
	case ErrDurationEmpty:
		return "empty duration"
	default:
		return fmt.Sprintf("duration error %d", int(e))
	}
}

// durationPattern accepts an optional hour group, optional whitespace and an
// optional minute group. Group contents are checked numerically afterwards
// so that "xh" is reported as a bad hour rather than a bad format.
var durationPattern = regexp.MustCompile(`^(?:([^\shm]+)h)?\s*(?:([^\shm]+)m)?$`)

const (
	maxHours   = math.MaxInt64 / int64(time.Hour)
	maxMinutes = math.MaxInt64 / int64(time.Minute)
)

// ParseDuration parses durations like "2h 30m", "2h" or "30m".
// "0h 0m" is a valid zero duration; "" is ErrDurationEmpty.
func ParseDuration(s string) (time.Duration, error) {
	m := durationPattern.FindStringSubmatchIndex(s)
	if m == nil {
		return 0, ErrDurationFormat
	}
	hasHours := m[2] >= 0
	hasMinutes := m[4] >= 0

	var hours, minutes uint64
	if hasHours {
		h, err := strconv.ParseUint(s[m[2]:m[3]], 10, 64)
		if err != nil || h > uint64(maxHours) {
			return 0, ErrDurationHours
		}
		hours = h
	}
	if hasMinutes {
		mins, err := strconv.ParseUint(s[m[4]:m[5]], 10, 64)
		if err != nil || mins > uint64(maxMinutes)-hours*60 {
			return 0, ErrDurationMinutes
		}
		minutes = mins
	}
	if !hasHours && !hasMinutes {
		return 0, ErrDurationEmpty
	}
	return time.Duration(hours*60+minutes) * time.Minute, nil
}

// FormatHoursMinutes formats d as "<h>h <m>m", the form ParseDuration reads.
// Seconds are truncated.
func FormatHoursMinutes(d time.Duration) string {
	total := int64(d / time.Minute)
	return fmt.Sprintf("%dh %dm", total/60, total%60)
}
