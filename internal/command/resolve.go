package command

import (
	"time"

	"github.com/Tiliavir/timelog/internal/goal"
)

// DateTimeLayout is the only accepted date/time syntax (RFC 3339).
const DateTimeLayout = time.RFC3339

// Clock returns the current time. It is read once per omitted date/time.
type Clock func() time.Time

// SystemClock reads the local wall clock.
var SystemClock Clock = time.Now

// Resolver converts Raw commands into Commands. It holds no state besides
// its clock and is safe for concurrent use.
type Resolver struct {
	now Clock
}

// NewResolver returns a Resolver reading time from now, or the system clock if nil.
func NewResolver(now Clock) *Resolver {
	if now == nil {
		now = SystemClock
	}
	return &Resolver{now: now}
}

// ResolveDateTime parses text as an RFC 3339 date/time in local time, or
// returns the current time when text is nil.
// Failures are *DateTimeError.
func (r *Resolver) ResolveDateTime(text *string) (time.Time, error) {
	t, err := r.dateTime(text)
	if err != nil {
		return time.Time{}, &DateTimeError{Err: err}
	}
	return t, nil
}

func (r *Resolver) dateTime(text *string) (time.Time, error) {
	if text == nil {
		return r.now(), nil
	}
	t, err := time.Parse(DateTimeLayout, *text)
	if err != nil {
		return time.Time{}, err
	}
	return t.Local(), nil
}

func (r *Resolver) resolveTimestamp(raw RawTimestamp) (Timestamp, error) {
	at, err := r.dateTime(raw.Text)
	if err != nil {
		return Timestamp{}, err
	}
	return Timestamp{At: at, Forgotten: raw.Forgotten}, nil
}

// Resolve converts raw into a Command. On failure it returns a nil Command
// and a *ParseError carrying the first failing argument.
func (r *Resolver) Resolve(raw Raw) (Command, error) {
	switch raw := elem(raw).(type) {
	case RawEnter:
		ts, err := r.resolveTimestamp(raw.Timestamp)
		if err != nil {
			return nil, DateTimeFailure(err)
		}
		return Enter{Timestamp: ts}, nil

	case RawExit:
		ts, err := r.resolveTimestamp(raw.Timestamp)
		if err != nil {
			return nil, DateTimeFailure(err)
		}
		return Exit{Timestamp: ts}, nil

	case RawCreate:
		return Create{Mnemonic: raw.Mnemonic, Code: raw.Code}, nil

	case RawEdit:
		return Edit{Mnemonic: raw.Mnemonic, Code: raw.Code}, nil

	case RawDelete:
		return Delete{Mnemonic: raw.Mnemonic}, nil

	case RawStart:
		ts, err := r.resolveTimestamp(raw.Timestamp)
		if err != nil {
			return nil, DateTimeFailure(err)
		}
		return Start{Mnemonic: raw.Mnemonic, Timestamp: ts}, nil

	case RawStop:
		ts, err := r.resolveTimestamp(raw.Timestamp)
		if err != nil {
			return nil, DateTimeFailure(err)
		}
		return Stop{Mnemonic: raw.Mnemonic, Timestamp: ts, Commit: raw.Commit}, nil

	case RawCommit:
		at, err := r.dateTime(raw.Text)
		if err != nil {
			return nil, DateTimeFailure(err)
		}
		return Commit{Mnemonic: raw.Mnemonic, At: at}, nil

	case RawResolve:
		return Resolve{Mnemonic: raw.Mnemonic}, nil

	case RawGoal:
		action, err := goal.ResolveAction(raw.Action, raw.Arg)
		if err != nil {
			return nil, GoalActionFailure(err)
		}
		return Goal{Action: action, Mnemonic: raw.Mnemonic}, nil

	case RawGoals:
		return Goals{Mnemonic: raw.Mnemonic}, nil

	case RawStatus:
		return Status{Mnemonic: raw.Mnemonic}, nil

	default:
		return nil, ErrUnknownCommand
	}
}
