package goal

import (
	"errors"
	"time"

	"github.com/Tiliavir/timelog/internal/timecalc"
)

var (
	// ErrUnexpectedArg is returned when --erase_all is combined with --time or --erase.
	ErrUnexpectedArg = errors.New("time/erase argument is not expected")
	// ErrMissingArg is returned when --period is given without --time or --erase.
	ErrMissingArg = errors.New("time/erase argument is missing")
)

// ActionError reports why a goal action could not be resolved. Err is
// ErrUnexpectedArg, ErrMissingArg, ErrInvalidPeriod or a timecalc.DurationError.
type ActionError struct {
	Err error
}

func (e *ActionError) Error() string { return e.Err.Error() }

func (e *ActionError) Unwrap() error { return e.Err }

// ActionRequest is the goal action as typed by the user: either a period to
// set or erase, or a request to erase every period.
type ActionRequest struct {
	EraseAll bool
	Period   string
}

// SetPeriod requests an action on the named period.
func SetPeriod(period string) ActionRequest {
	return ActionRequest{Period: period}
}

// EraseAllPeriods requests removal of all goals.
func EraseAllPeriods() ActionRequest {
	return ActionRequest{EraseAll: true}
}

// ArgRequest is the optional argument of a goal action: a duration text or
// the erase flag.
type ArgRequest struct {
	Erase    bool
	Duration string
}

// DurationArg carries the raw --time text.
func DurationArg(text string) *ArgRequest {
	return &ArgRequest{Duration: text}
}

// EraseArg carries the --erase flag.
func EraseArg() *ArgRequest {
	return &ArgRequest{Erase: true}
}

// ActionKind enumerates resolved goal actions.
type ActionKind int

const (
	ActionSet ActionKind = iota + 1
	ActionErase
	ActionEraseAll
)

// Action is a resolved goal action. Period is set for ActionSet and
// ActionErase, Duration only for ActionSet.
type Action struct {
	Kind     ActionKind
	Period   Period
	Duration time.Duration
}

func Set(p Period, d time.Duration) Action { return Action{Kind: ActionSet, Period: p, Duration: d} }

func Erase(p Period) Action { return Action{Kind: ActionErase, Period: p} }

func EraseAll() Action { return Action{Kind: ActionEraseAll} }

// ResolveAction combines the action and its optional argument:
//
//	erase_all + nothing      -> EraseAll
//	erase_all + time/erase   -> ErrUnexpectedArg
//	period    + nothing      -> ErrMissingArg
//	period    + erase        -> Erase(period)
//	period    + time         -> Set(period, time)
//
// The period is parsed before the duration.
func ResolveAction(req ActionRequest, arg *ArgRequest) (Action, error) {
	if req.EraseAll {
		if arg != nil {
			return Action{}, &ActionError{Err: ErrUnexpectedArg}
		}
		return EraseAll(), nil
	}
	if arg == nil {
		return Action{}, &ActionError{Err: ErrMissingArg}
	}

	period, err := ParsePeriod(req.Period)
	if err != nil {
		return Action{}, &ActionError{Err: err}
	}
	if arg.Erase {
		return Erase(period), nil
	}

	d, err := timecalc.ParseDuration(arg.Duration)
	if err != nil {
		return Action{}, &ActionError{Err: err}
	}
	return Set(period, d), nil
}
