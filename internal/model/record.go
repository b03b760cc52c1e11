package model

import "time"

// RecordKind is the event a session log line describes.
type RecordKind string

const (
	RecordEnter  RecordKind = "enter"
	RecordExit   RecordKind = "exit"
	RecordStart  RecordKind = "start"
	RecordStop   RecordKind = "stop"
	RecordCommit RecordKind = "commit"
)

// Opens reports whether the record begins a worked interval.
func (k RecordKind) Opens() bool { return k == RecordEnter || k == RecordStart }

// Closes reports whether the record ends a worked interval.
func (k RecordKind) Closes() bool { return k == RecordExit || k == RecordStop }

// Record is one line of a sessions.log file.
type Record struct {
	Kind      RecordKind `json:"kind"`
	At        time.Time  `json:"at"`
	Forgotten bool       `json:"forgotten,omitempty"`
}

// Task is the metadata stored in tasks/<mnemonic>/task.yaml.
type Task struct {
	Mnemonic string  `yaml:"mnemonic"`
	Code     *string `yaml:"code,omitempty"`
}

// GoalFile is the content of a goals.yaml file. Goals maps a period token
// ("week", "friday", ...) to a duration like "8h 0m".
type GoalFile struct {
	Goals map[string]string `yaml:"goals"`
}
