// Package command turns the arguments collected by the CLI into fully
// resolved commands. Resolution fills in deferred defaults (the current time
// when no date/time was given) and validates goal arguments.
package command

import "github.com/Tiliavir/timelog/internal/goal"

// Raw is a command as invoked by the user, with possibly missing values.
// It is one of RawEnter, RawExit, RawCreate, RawEdit, RawDelete, RawStart,
// RawStop, RawCommit, RawResolve, RawGoal, RawGoals or RawStatus. Pointers
// to these are accepted too and resolve like the value they point to.
type Raw interface {
	isRaw()
}

// RawTimestamp is an optional date/time argument plus the --forgot flag.
// A nil Text means "now" once resolved.
type RawTimestamp struct {
	Text      *string
	Forgotten bool
}

type RawEnter struct {
	Timestamp RawTimestamp
}

type RawExit struct {
	Timestamp RawTimestamp
}

type RawCreate struct {
	Mnemonic string
	Code     *string
}

type RawEdit struct {
	Mnemonic string
	Code     *string
}

type RawDelete struct {
	Mnemonic string
}

type RawStart struct {
	Mnemonic  string
	Timestamp RawTimestamp
}

type RawStop struct {
	Mnemonic  *string
	Timestamp RawTimestamp
	Commit    bool
}

// RawCommit has no --forgot flag; its date/time still defaults to now.
type RawCommit struct {
	Mnemonic string
	Text     *string
}

type RawResolve struct {
	Mnemonic *string
}

type RawGoal struct {
	Action   goal.ActionRequest
	Arg      *goal.ArgRequest
	Mnemonic *string
}

type RawGoals struct {
	Mnemonic *string
}

type RawStatus struct {
	Mnemonic *string
}

func (RawEnter) isRaw() {}
func (RawExit) isRaw() {}
func (RawCreate) isRaw() {}
func (RawEdit) isRaw() {}
func (RawDelete) isRaw() {}
func (RawStart) isRaw() {}
func (RawStop) isRaw() {}
func (RawCommit) isRaw() {}
func (RawResolve) isRaw() {}
func (RawGoal) isRaw() {}
func (RawGoals) isRaw() {}
func (RawStatus) isRaw() {}

// elem returns the value a *RawX points to, or raw itself when it is not a
// pointer. A nil pointer yields nil.
func elem(raw Raw) Raw {
	switch p := raw.(type) {
	case *RawEnter:
		return deref(p)
	case *RawExit:
		return deref(p)
	case *RawCreate:
		return deref(p)
	case *RawEdit:
		return deref(p)
	case *RawDelete:
		return deref(p)
	case *RawStart:
		return deref(p)
	case *RawStop:
		return deref(p)
	case *RawCommit:
		return deref(p)
	case *RawResolve:
		return deref(p)
	case *RawGoal:
		return deref(p)
	case *RawGoals:
		return deref(p)
	case *RawStatus:
		return deref(p)
	}
	return raw
}

func deref[T Raw](p *T) Raw {
	if p == nil {
		return nil
	}
	return *p
}
