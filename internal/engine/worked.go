package engine

import (
	"time"

	"github.com/Tiliavir/timelog/internal/model"
	"github.com/Tiliavir/timelog/internal/timecalc"
)

type interval struct {
	start, end time.Time
}

// intervals pairs opening and closing records in time order. An interval
// still open at the end of the log runs until now. Unmatched closes are ignored.
func intervals(records []model.Record, now time.Time) []interval {
	var (
		out     []interval
		open    bool
		started time.Time
	)
	for _, r := range sortedRecords(records) {
		switch {
		case r.Kind.Opens() && !open:
			open, started = true, r.At
		case r.Kind.Closes() && open:
			out = append(out, interval{start: started, end: r.At})
			open = false
		}
	}
	if open {
		out = append(out, interval{start: started, end: now})
	}
	return out
}

// openSince reports whether the log ends with an open interval and when it began.
func openSince(records []model.Record) (time.Time, bool) {
	var (
		open    bool
		started time.Time
	)
	for _, r := range sortedRecords(records) {
		switch {
		case r.Kind.Opens() && !open:
			open, started = true, r.At
		case r.Kind.Closes():
			open = false
		}
	}
	return started, open
}

// worked sums the time spent inside [from, to).
func worked(ivs []interval, from, to time.Time) time.Duration {
	var total time.Duration
	for _, iv := range ivs {
		total += timecalc.Overlap(iv.start, iv.end, from, to)
	}
	return total
}
