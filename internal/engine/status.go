package engine

import (
	"fmt"
	"time"

	"github.com/Tiliavir/timelog/internal/command"
	"github.com/Tiliavir/timelog/internal/goal"
	"github.com/Tiliavir/timelog/internal/storage"
	"github.com/Tiliavir/timelog/internal/timecalc"
)

func (e *Engine) status(c command.Status) error {
	now := e.now()

	title := "Work"
	if c.Mnemonic != nil {
		task, err := storage.LoadTask(e.base, *c.Mnemonic)
		if err != nil {
			return err
		}
		title = "Task " + task.Mnemonic
		if task.Code != nil {
			title += " (" + *task.Code + ")"
		}
	}

	records, err := e.loadRecords(c.Mnemonic)
	if err != nil {
		return err
	}
	goals, err := e.loadGoals(c.Mnemonic)
	if err != nil {
		return err
	}

	fmt.Fprintln(e.out, e.heading(title))
	if since, open := openSince(records); open {
		elapsed := int64(now.Sub(since).Seconds())
		fmt.Fprintf(e.out, "  Running since %s (%s)\n", since.Format(timestampLayout), timecalc.FormatDurationHHMMSS(elapsed))
	} else {
		fmt.Fprintln(e.out, "  Not running.")
	}

	ivs := intervals(records, now)

	dayGoal, hasDayGoal := goals[goal.Weekday(now.Weekday())]
	if !hasDayGoal {
		dayGoal, hasDayGoal = goals[goal.Day]
	}
	weekGoal, hasWeekGoal := goals[goal.Week]
	monthGoal, hasMonthGoal := goals[goal.Month]

	from, to := timecalc.DayRange(now)
	e.printProgress("Today", worked(ivs, from, to), dayGoal, hasDayGoal)
	from, to = timecalc.WeekRange(now)
	e.printProgress("Week "+timecalc.ISOWeekLabel(now), worked(ivs, from, to), weekGoal, hasWeekGoal)
	from, to = timecalc.MonthRange(now)
	e.printProgress(now.Format("January 2006"), worked(ivs, from, to), monthGoal, hasMonthGoal)
	return nil
}

func (e *Engine) printProgress(label string, done, target time.Duration, hasTarget bool) {
	line := fmt.Sprintf("  %-16s %s", label, timecalc.FormatDuration(int64(done.Seconds())))
	if hasTarget {
		line += " / " + timecalc.FormatHoursMinutes(target)
		if left := target - done; left > 0 {
			line += fmt.Sprintf(" (%s left)", timecalc.FormatDuration(int64(left.Seconds())))
		} else {
			line += " (reached)"
		}
	}
	fmt.Fprintln(e.out, line)
}
