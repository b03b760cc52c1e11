package engine_test

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tiliavir/timelog/internal/command"
	"github.com/Tiliavir/timelog/internal/engine"
	"github.com/Tiliavir/timelog/internal/goal"
	"github.com/Tiliavir/timelog/internal/model"
	"github.com/Tiliavir/timelog/internal/storage"
)

// 2026-10-16 is a Friday.
var now = time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

func at(hour, min int) time.Time {
	return time.Date(2026, 10, 16, hour, min, 0, 0, time.UTC)
}

func ptr(s string) *string { return &s }

type fixture struct {
	base string
	out  *bytes.Buffer
	eng  *engine.Engine
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{base: t.TempDir(), out: &bytes.Buffer{}}
	f.eng = engine.New(engine.Config{
		DataDir: f.base,
		Out:     f.out,
		Now:     func() time.Time { return now },
	})
	return f
}

func (f *fixture) run(t *testing.T, cmds ...command.Command) {
	t.Helper()
	for _, c := range cmds {
		require.NoError(t, f.eng.Execute(c), "executing %s", c.Name())
	}
}

func (f *fixture) records(t *testing.T, mnemonic *string) []model.Record {
	t.Helper()
	path, err := storage.LogPath(f.base, mnemonic)
	require.NoError(t, err)
	records, err := storage.LoadRecords(path)
	require.NoError(t, err)
	return records
}

func TestEnterExitStatus(t *testing.T) {
	f := newFixture(t)
	f.run(t,
		command.Enter{Timestamp: command.Timestamp{At: at(8, 0)}},
		command.Exit{Timestamp: command.Timestamp{At: at(11, 30), Forgotten: true}},
		command.Goal{Action: goal.Set(goal.Day, 8*time.Hour)},
	)

	records := f.records(t, nil)
	require.Len(t, records, 2)
	assert.Equal(t, model.RecordEnter, records[0].Kind)
	assert.Equal(t, model.RecordExit, records[1].Kind)
	assert.True(t, records[1].Forgotten)

	f.out.Reset()
	f.run(t, command.Status{})
	out := f.out.String()
	assert.Contains(t, out, "Work")
	assert.Contains(t, out, "Not running.")
	assert.Contains(t, out, "3h 30m / 8h 0m (4h 30m left)")
	assert.Contains(t, out, "Week 2026-W42")
	assert.Contains(t, out, "October 2026")
}

func TestWeekdayGoalOverridesDayGoal(t *testing.T) {
	f := newFixture(t)
	f.run(t,
		command.Enter{Timestamp: command.Timestamp{At: at(8, 0)}},
		command.Goal{Action: goal.Set(goal.Day, 8*time.Hour)},
		command.Goal{Action: goal.Set(goal.Weekday(time.Friday), 2*time.Hour)},
	)

	f.out.Reset()
	f.run(t, command.Status{})
	out := f.out.String()
	assert.Contains(t, out, "Running since 2026-10-16 08:00 (04:00:00)")
	assert.Contains(t, out, "4h 0m / 2h 0m (reached)")
}

func TestTaskStartStopCommit(t *testing.T) {
	f := newFixture(t)
	f.run(t,
		command.Create{Mnemonic: "reports", Code: ptr("JIRA-7")},
		command.Start{Mnemonic: "reports", Timestamp: command.Timestamp{At: at(9, 0)}},
		command.Stop{Timestamp: command.Timestamp{At: at(10, 15)}, Commit: true},
	)

	records := f.records(t, ptr("reports"))
	require.Len(t, records, 3)
	assert.Equal(t, model.RecordStart, records[0].Kind)
	assert.Equal(t, model.RecordStop, records[1].Kind)
	assert.Equal(t, model.RecordCommit, records[2].Kind)
	assert.True(t, records[2].At.Equal(at(10, 15)))
	assert.Empty(t, f.records(t, nil), "work log untouched")

	f.out.Reset()
	f.run(t, command.Status{Mnemonic: ptr("reports")})
	assert.Contains(t, f.out.String(), "Task reports (JIRA-7)")
	assert.Contains(t, f.out.String(), "1h 15m")
}

func TestStopPicksMostRecentlyStartedTask(t *testing.T) {
	f := newFixture(t)
	f.run(t,
		command.Create{Mnemonic: "a"},
		command.Create{Mnemonic: "b"},
		command.Start{Mnemonic: "b", Timestamp: command.Timestamp{At: at(8, 0)}},
		command.Start{Mnemonic: "a", Timestamp: command.Timestamp{At: at(9, 0)}},
		command.Stop{Timestamp: command.Timestamp{At: at(10, 0)}},
	)
	assert.Len(t, f.records(t, ptr("a")), 2)
	assert.Len(t, f.records(t, ptr("b")), 1)
}

func TestStopErrors(t *testing.T) {
	f := newFixture(t)
	err := f.eng.Execute(command.Stop{Timestamp: command.Timestamp{At: now}})
	assert.ErrorIs(t, err, engine.ErrNoActiveTask)

	f.run(t, command.Create{Mnemonic: "reports"})
	err = f.eng.Execute(command.Stop{Mnemonic: ptr("reports"), Timestamp: command.Timestamp{At: now}})
	assert.ErrorIs(t, err, engine.ErrNotStarted)

	err = f.eng.Execute(command.Stop{Mnemonic: ptr("missing"), Timestamp: command.Timestamp{At: now}})
	assert.ErrorIs(t, err, storage.ErrTaskNotFound)
}

func TestStartErrors(t *testing.T) {
	f := newFixture(t)
	err := f.eng.Execute(command.Start{Mnemonic: "missing", Timestamp: command.Timestamp{At: now}})
	assert.ErrorIs(t, err, storage.ErrTaskNotFound)

	f.run(t,
		command.Create{Mnemonic: "reports"},
		command.Start{Mnemonic: "reports", Timestamp: command.Timestamp{At: at(9, 0)}},
	)
	err = f.eng.Execute(command.Start{Mnemonic: "reports", Timestamp: command.Timestamp{At: at(9, 30)}})
	assert.ErrorIs(t, err, engine.ErrAlreadyStarted)
}

func TestCreateEditDelete(t *testing.T) {
	f := newFixture(t)
	f.run(t, command.Create{Mnemonic: "reports"})
	assert.ErrorIs(t, f.eng.Execute(command.Create{Mnemonic: "reports"}), storage.ErrTaskExists)

	f.run(t, command.Edit{Mnemonic: "reports", Code: ptr("OPS-3")})
	task, err := storage.LoadTask(f.base, "reports")
	require.NoError(t, err)
	require.NotNil(t, task.Code)
	assert.Equal(t, "OPS-3", *task.Code)

	f.run(t, command.Delete{Mnemonic: "reports"})
	assert.NoDirExists(t, filepath.Join(f.base, "tasks", "reports"))
	assert.ErrorIs(t, f.eng.Execute(command.Edit{Mnemonic: "reports"}), storage.ErrTaskNotFound)
	assert.ErrorIs(t, f.eng.Execute(command.Delete{Mnemonic: "reports"}), storage.ErrTaskNotFound)
}

func TestGoalsLifecycle(t *testing.T) {
	f := newFixture(t)
	f.run(t,
		command.Goal{Action: goal.Set(goal.Week, 40*time.Hour)},
		command.Goal{Action: goal.Set(goal.Weekday(time.Friday), 6*time.Hour+30*time.Minute)},
		command.Goal{Action: goal.Set(goal.Month, 160*time.Hour)},
	)

	f.out.Reset()
	f.run(t, command.Goals{})
	out := f.out.String()
	assert.Contains(t, out, "Goals for work:")
	assert.Contains(t, out, "week       40h 0m")
	assert.Contains(t, out, "friday     6h 30m")
	assert.Less(t, bytes.Index(f.out.Bytes(), []byte("month")), bytes.Index(f.out.Bytes(), []byte("friday")))

	f.run(t, command.Goal{Action: goal.Erase(goal.Week)})
	f.out.Reset()
	f.run(t, command.Goal{Action: goal.Erase(goal.Week)})
	assert.Contains(t, f.out.String(), "No week goal set for work")

	f.run(t, command.Goal{Action: goal.EraseAll()})
	f.out.Reset()
	f.run(t, command.Goals{})
	assert.Contains(t, f.out.String(), "No goals set for work.")
}

func TestGoalOnUnknownTask(t *testing.T) {
	f := newFixture(t)
	err := f.eng.Execute(command.Goal{Action: goal.EraseAll(), Mnemonic: ptr("missing")})
	assert.ErrorIs(t, err, storage.ErrTaskNotFound)
}

func TestResolveListsForgotten(t *testing.T) {
	f := newFixture(t)
	f.run(t, command.Resolve{})
	assert.Contains(t, f.out.String(), "No forgotten entries for work.")

	f.run(t,
		command.Enter{Timestamp: command.Timestamp{At: at(8, 5), Forgotten: true}},
		command.Exit{Timestamp: command.Timestamp{At: at(11, 0)}},
	)
	f.out.Reset()
	f.run(t, command.Resolve{})
	out := f.out.String()
	assert.Contains(t, out, "2026-10-16 08:05  enter")
	assert.NotContains(t, out, "exit")
}

func TestExecutePipelineFromRaw(t *testing.T) {
	f := newFixture(t)
	r := command.NewResolver(func() time.Time { return now })

	cmd, err := r.Resolve(command.RawEnter{})
	require.NoError(t, err)
	f.run(t, cmd)

	records := f.records(t, nil)
	require.Len(t, records, 1)
	assert.True(t, records[0].At.Equal(now))
}
