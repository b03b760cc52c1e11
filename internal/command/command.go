package command

import (
	"time"

	"github.com/Tiliavir/timelog/internal/goal"
)

// Command is a fully resolved command, ready to be executed.
// Every variant is a comparable value.
type Command interface {
	// Name is the subcommand the value was resolved from.
	Name() string
}

// Timestamp is a resolved date/time. At is never the zero time.
type Timestamp struct {
	At        time.Time
	Forgotten bool
}

type Enter struct {
	Timestamp Timestamp
}

type Exit struct {
	Timestamp Timestamp
}

type Create struct {
	Mnemonic string
	Code     *string
}

type Edit struct {
	Mnemonic string
	Code     *string
}

type Delete struct {
	Mnemonic string
}

type Start struct {
	Mnemonic  string
	Timestamp Timestamp
}

type Stop struct {
	Mnemonic  *string
	Timestamp Timestamp
	Commit    bool
}

type Commit struct {
	Mnemonic string
	At       time.Time
}

type Resolve struct {
	Mnemonic *string
}

type Goal struct {
	Action   goal.Action
	Mnemonic *string
}

type Goals struct {
	Mnemonic *string
}

type Status struct {
	Mnemonic *string
}

func (Enter) Name() string { return "enter" }
func (Exit) Name() string { return "exit" }
func (Create) Name() string { return "create" }
func (Edit) Name() string { return "edit" }
func (Delete) Name() string { return "delete" }
func (Start) Name() string { return "start" }
func (Stop) Name() string { return "stop" }
func (Commit) Name() string { return "commit" }
func (Resolve) Name() string { return "resolve" }
func (Goal) Name() string { return "goal" }
func (Goals) Name() string { return "goals" }
func (Status) Name() string { return "status" }
