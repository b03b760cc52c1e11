package engine

import (
	"fmt"
	"time"

	"github.com/Tiliavir/timelog/internal/command"
	"github.com/Tiliavir/timelog/internal/goal"
	"github.com/Tiliavir/timelog/internal/model"
	"github.com/Tiliavir/timelog/internal/storage"
	"github.com/Tiliavir/timelog/internal/timecalc"
)

func (e *Engine) goal(c command.Goal) error {
	if err := e.requireScope(c.Mnemonic); err != nil {
		return err
	}
	path, err := storage.GoalsPath(e.base, c.Mnemonic)
	if err != nil {
		return err
	}
	gf, err := storage.LoadGoals(path)
	if err != nil {
		return err
	}

	scope := scopeName(c.Mnemonic)
	switch c.Action.Kind {
	case goal.ActionSet:
		text := timecalc.FormatHoursMinutes(c.Action.Duration)
		gf.Goals[c.Action.Period.String()] = text
		fmt.Fprintf(e.out, "Set %s goal for %s to %s\n", c.Action.Period, scope, text)
	case goal.ActionErase:
		if _, ok := gf.Goals[c.Action.Period.String()]; !ok {
			fmt.Fprintf(e.out, "No %s goal set for %s\n", c.Action.Period, scope)
			return nil
		}
		delete(gf.Goals, c.Action.Period.String())
		fmt.Fprintf(e.out, "Erased %s goal for %s\n", c.Action.Period, scope)
	case goal.ActionEraseAll:
		gf = model.GoalFile{Goals: map[string]string{}}
		fmt.Fprintf(e.out, "Erased all goals for %s\n", scope)
	default:
		return fmt.Errorf("unknown goal action %d", c.Action.Kind)
	}
	return storage.SaveGoals(path, gf)
}

func (e *Engine) goals(c command.Goals) error {
	if err := e.requireScope(c.Mnemonic); err != nil {
		return err
	}
	set, err := e.loadGoals(c.Mnemonic)
	if err != nil {
		return err
	}
	if len(set) == 0 {
		fmt.Fprintf(e.out, "No goals set for %s.\n", scopeName(c.Mnemonic))
		return nil
	}

	fmt.Fprintln(e.out, e.heading(fmt.Sprintf("Goals for %s:", scopeName(c.Mnemonic))))
	for _, p := range goal.Periods() {
		if d, ok := set[p]; ok {
			fmt.Fprintf(e.out, "  %-10s %s\n", p, timecalc.FormatHoursMinutes(d))
		}
	}
	return nil
}

// loadGoals reads the scope's goals and parses every stored duration.
func (e *Engine) loadGoals(mnemonic *string) (map[goal.Period]time.Duration, error) {
	path, err := storage.GoalsPath(e.base, mnemonic)
	if err != nil {
		return nil, err
	}
	gf, err := storage.LoadGoals(path)
	if err != nil {
		return nil, err
	}
	set := make(map[goal.Period]time.Duration, len(gf.Goals))
	for token, text := range gf.Goals {
		p, err := goal.ParsePeriod(token)
		if err != nil {
			return nil, fmt.Errorf("goals file %s: period %q: %w", path, token, err)
		}
		d, err := timecalc.ParseDuration(text)
		if err != nil {
			return nil, fmt.Errorf("goals file %s: %s goal %q: %w", path, token, text, err)
		}
		set[p] = d
	}
	return set, nil
}
