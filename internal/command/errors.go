package command

import (
	"errors"
	"fmt"
)

// ErrUnknownCommand is returned by Resolve for a nil Raw.
var ErrUnknownCommand = errors.New("unknown command")

// DateTimeError wraps the parser diagnostic for a malformed date/time argument.
type DateTimeError struct {
	Err error
}

func (e *DateTimeError) Error() string { return e.Err.Error() }

func (e *DateTimeError) Unwrap() error { return e.Err }

// ArgKind names the kind of argument a ParseError is about.
type ArgKind int

const (
	ArgDateTime ArgKind = iota + 1
	ArgDuration
	ArgPeriod
	ArgGoalAction
)

func (k ArgKind) String() string {
	switch k {
	case ArgDateTime:
		return "the date/time argument"
	case ArgDuration:
		return "the duration argument"
	case ArgPeriod:
		return "the period argument"
	case ArgGoalAction:
		return "the goal action"
	default:
		return "the argument"
	}
}

// ParseError is the single error a failed resolution returns. Err is the
// unmodified cause: a *DateTimeError, a timecalc.DurationError,
// goal.ErrInvalidPeriod or a *goal.ActionError.
type ParseError struct {
	Arg ArgKind
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse %s: %v", e.Arg, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func DateTimeFailure(err error) *ParseError {
	return &ParseError{Arg: ArgDateTime, Err: &DateTimeError{Err: err}}
}

func DurationFailure(err error) *ParseError {
	return &ParseError{Arg: ArgDuration, Err: err}
}

func PeriodFailure(err error) *ParseError {
	return &ParseError{Arg: ArgPeriod, Err: err}
}

func GoalActionFailure(err error) *ParseError {
	return &ParseError{Arg: ArgGoalAction, Err: err}
}
