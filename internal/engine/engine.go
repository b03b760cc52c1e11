// Package engine executes resolved commands against the file store.
package engine

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/Tiliavir/timelog/internal/command"
	"github.com/Tiliavir/timelog/internal/logging"
	"github.com/Tiliavir/timelog/internal/model"
	"github.com/Tiliavir/timelog/internal/storage"
)

var (
	ErrNoActiveTask   = errors.New("no task is currently started")
	ErrAlreadyStarted = errors.New("task is already started")
	ErrNotStarted     = errors.New("task is not started")
)

const timestampLayout = "2006-01-02 15:04"

var headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))

// Config wires an Engine to its data directory and output.
type Config struct {
	DataDir string
	Out     io.Writer
	Now     command.Clock
	Log     *slog.Logger
	Color   bool
}

// Engine applies commands to the logs, tasks and goals under DataDir.
type Engine struct {
	base  string
	out   io.Writer
	now   command.Clock
	log   *slog.Logger
	color bool
}

// New returns an Engine. Nil Now and Log fall back to the system clock and a
// discarding logger.
func New(cfg Config) *Engine {
	e := &Engine{
		base:  cfg.DataDir,
		out:   cfg.Out,
		now:   cfg.Now,
		log:   cfg.Log,
		color: cfg.Color,
	}
	if e.out == nil {
		e.out = io.Discard
	}
	if e.now == nil {
		e.now = command.SystemClock
	}
	if e.log == nil {
		e.log = logging.Discard()
	}
	return e
}

// Execute performs cmd.
func (e *Engine) Execute(cmd command.Command) error {
	e.log.Debug("executing command", "command", cmd.Name())

	var err error
	switch c := cmd.(type) {
	case command.Enter:
		err = e.appendRecord(nil, model.RecordEnter, c.Timestamp)
	case command.Exit:
		err = e.appendRecord(nil, model.RecordExit, c.Timestamp)
	case command.Create:
		err = e.create(c)
	case command.Edit:
		err = e.edit(c)
	case command.Delete:
		err = e.delete(c)
	case command.Start:
		err = e.start(c)
	case command.Stop:
		err = e.stop(c)
	case command.Commit:
		err = e.commit(c.Mnemonic, c.At)
	case command.Resolve:
		err = e.resolve(c)
	case command.Goal:
		err = e.goal(c)
	case command.Goals:
		err = e.goals(c)
	case command.Status:
		err = e.status(c)
	default:
		err = fmt.Errorf("%w: %T", command.ErrUnknownCommand, cmd)
	}

	if err != nil {
		e.log.Error("command failed", "command", cmd.Name(), "error", err)
		return err
	}
	e.log.Info("command executed", "command", cmd.Name())
	return nil
}

func (e *Engine) heading(s string) string {
	if e.color {
		return headingStyle.Render(s)
	}
	return s
}

func scopeName(mnemonic *string) string {
	if mnemonic == nil {
		return "work"
	}
	return *mnemonic
}

// requireScope checks that a task scope exists. The work scope always does.
func (e *Engine) requireScope(mnemonic *string) error {
	if mnemonic == nil {
		return nil
	}
	_, err := storage.LoadTask(e.base, *mnemonic)
	return err
}

func (e *Engine) loadRecords(mnemonic *string) ([]model.Record, error) {
	path, err := storage.LogPath(e.base, mnemonic)
	if err != nil {
		return nil, err
	}
	return storage.LoadRecords(path)
}

func (e *Engine) appendRecord(mnemonic *string, kind model.RecordKind, ts command.Timestamp) error {
	path, err := storage.LogPath(e.base, mnemonic)
	if err != nil {
		return err
	}
	rec := model.Record{Kind: kind, At: ts.At, Forgotten: ts.Forgotten}
	if err := storage.AppendRecord(path, rec); err != nil {
		return err
	}

	mark := ""
	if ts.Forgotten {
		mark = " (forgotten)"
	}
	fmt.Fprintf(e.out, "Registered %s for %s at %s%s\n", kind, scopeName(mnemonic), ts.At.Format(timestampLayout), mark)
	return nil
}

func (e *Engine) create(c command.Create) error {
	if err := storage.CreateTask(e.base, model.Task{Mnemonic: c.Mnemonic, Code: c.Code}); err != nil {
		return err
	}
	fmt.Fprintf(e.out, "Created task %q\n", c.Mnemonic)
	return nil
}

func (e *Engine) edit(c command.Edit) error {
	task, err := storage.LoadTask(e.base, c.Mnemonic)
	if err != nil {
		return err
	}
	task.Code = c.Code
	if err := storage.SaveTask(e.base, task); err != nil {
		return err
	}
	fmt.Fprintf(e.out, "Updated task %q\n", c.Mnemonic)
	return nil
}

func (e *Engine) delete(c command.Delete) error {
	if err := storage.DeleteTask(e.base, c.Mnemonic); err != nil {
		return err
	}
	fmt.Fprintf(e.out, "Deleted task %q\n", c.Mnemonic)
	return nil
}

func (e *Engine) start(c command.Start) error {
	if _, err := storage.LoadTask(e.base, c.Mnemonic); err != nil {
		return err
	}
	records, err := e.loadRecords(&c.Mnemonic)
	if err != nil {
		return err
	}
	if _, open := openSince(records); open {
		return fmt.Errorf("%w: %s", ErrAlreadyStarted, c.Mnemonic)
	}
	return e.appendRecord(&c.Mnemonic, model.RecordStart, c.Timestamp)
}

func (e *Engine) stop(c command.Stop) error {
	mnemonic := c.Mnemonic
	if mnemonic == nil {
		active, err := e.activeTask()
		if err != nil {
			return err
		}
		mnemonic = &active
	} else {
		if _, err := storage.LoadTask(e.base, *mnemonic); err != nil {
			return err
		}
		records, err := e.loadRecords(mnemonic)
		if err != nil {
			return err
		}
		if _, open := openSince(records); !open {
			return fmt.Errorf("%w: %s", ErrNotStarted, *mnemonic)
		}
	}

	if err := e.appendRecord(mnemonic, model.RecordStop, c.Timestamp); err != nil {
		return err
	}
	if c.Commit {
		return e.commit(*mnemonic, c.Timestamp.At)
	}
	return nil
}

func (e *Engine) commit(mnemonic string, at time.Time) error {
	if _, err := storage.LoadTask(e.base, mnemonic); err != nil {
		return err
	}
	return e.appendRecord(&mnemonic, model.RecordCommit, command.Timestamp{At: at})
}

// activeTask returns the task with the most recent open start record.
func (e *Engine) activeTask() (string, error) {
	names, err := storage.ListTasks(e.base)
	if err != nil {
		return "", err
	}
	var (
		found  string
		latest time.Time
	)
	for _, name := range names {
		records, err := e.loadRecords(&name)
		if err != nil {
			return "", err
		}
		if since, open := openSince(records); open && (found == "" || since.After(latest)) {
			found, latest = name, since
		}
	}
	if found == "" {
		return "", ErrNoActiveTask
	}
	return found, nil
}

func (e *Engine) resolve(c command.Resolve) error {
	if err := e.requireScope(c.Mnemonic); err != nil {
		return err
	}
	records, err := e.loadRecords(c.Mnemonic)
	if err != nil {
		return err
	}

	var forgotten []model.Record
	for _, r := range sortedRecords(records) {
		if r.Forgotten {
			forgotten = append(forgotten, r)
		}
	}
	if len(forgotten) == 0 {
		fmt.Fprintf(e.out, "No forgotten entries for %s.\n", scopeName(c.Mnemonic))
		return nil
	}

	fmt.Fprintln(e.out, e.heading(fmt.Sprintf("Forgotten entries for %s:", scopeName(c.Mnemonic))))
	for _, r := range forgotten {
		fmt.Fprintf(e.out, "  %s  %s\n", r.At.Format(timestampLayout), r.Kind)
	}
	return nil
}

// sortedRecords returns records ordered by time; equal times keep log order.
func sortedRecords(records []model.Record) []model.Record {
	sorted := make([]model.Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].At.Before(sorted[j].At) })
	return sorted
}
