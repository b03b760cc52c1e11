package cmd

import (
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tiliavir/timelog/internal/command"
	"github.com/Tiliavir/timelog/internal/engine"
	"github.com/Tiliavir/timelog/internal/goal"
	"github.com/Tiliavir/timelog/internal/logging"
)

func ptr(s string) *string { return &s }

// parse runs the CLI with args and returns the raw command it built.
func parse(t *testing.T, args ...string) (command.Raw, error) {
	t.Helper()
	var got command.Raw
	root := newRootCmd(func(raw command.Raw) error {
		got = raw
		return nil
	})
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return got, root.Execute()
}

func TestBuildsRawCommands(t *testing.T) {
	const when = "2026-10-16T08:00:00+02:00"
	tests := []struct {
		args []string
		want command.Raw
	}{
		{[]string{"enter"}, command.RawEnter{}},
		{[]string{"enter", when, "-f"}, command.RawEnter{Timestamp: command.RawTimestamp{Text: ptr(when), Forgotten: true}}},
		{[]string{"exit", "--forgot"}, command.RawExit{Timestamp: command.RawTimestamp{Forgotten: true}}},
		{[]string{"create", "reports"}, command.RawCreate{Mnemonic: "reports"}},
		{[]string{"new", "reports", "JIRA-1"}, command.RawCreate{Mnemonic: "reports", Code: ptr("JIRA-1")}},
		{[]string{"edit", "reports", "JIRA-2"}, command.RawEdit{Mnemonic: "reports", Code: ptr("JIRA-2")}},
		{[]string{"del", "reports"}, command.RawDelete{Mnemonic: "reports"}},
		{[]string{"start", "reports", when}, command.RawStart{Mnemonic: "reports", Timestamp: command.RawTimestamp{Text: ptr(when)}}},
		{[]string{"stop", "-c"}, command.RawStop{Commit: true}},
		{[]string{"stop", "reports", when, "-f"}, command.RawStop{Mnemonic: ptr("reports"), Timestamp: command.RawTimestamp{Text: ptr(when), Forgotten: true}}},
		{[]string{"commit", "reports"}, command.RawCommit{Mnemonic: "reports"}},
		{[]string{"commit", "reports", when}, command.RawCommit{Mnemonic: "reports", Text: ptr(when)}},
		{[]string{"resolve"}, command.RawResolve{}},
		{[]string{"goal", "--erase_all"}, command.RawGoal{Action: goal.EraseAllPeriods()}},
		{[]string{"goal", "-p", "week", "-t", "40h", "reports"}, command.RawGoal{Action: goal.SetPeriod("week"), Arg: goal.DurationArg("40h"), Mnemonic: ptr("reports")}},
		{[]string{"goal", "--period", "friday", "--erase"}, command.RawGoal{Action: goal.SetPeriod("friday"), Arg: goal.EraseArg()}},
		{[]string{"goal", "-p", "day"}, command.RawGoal{Action: goal.SetPeriod("day")}},
		{[]string{"goal", "--erase_all", "-t", "1h"}, command.RawGoal{Action: goal.EraseAllPeriods(), Arg: goal.DurationArg("1h")}},
		{[]string{"goals", "reports"}, command.RawGoals{Mnemonic: ptr("reports")}},
		{[]string{"status"}, command.RawStatus{}},
	}
	for _, tt := range tests {
		t.Run(tt.args[0], func(t *testing.T) {
			got, err := parse(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRejectsInvalidUsage(t *testing.T) {
	tests := [][]string{
		{"create"},
		{"delete", "a", "b"},
		{"start"},
		{"commit"},
		{"enter", "a", "b"},
		{"goal"},
		{"goal", "-p", "week", "--erase_all"},
		{"goal", "-p", "week", "-t", "1h", "-e"},
		{"status", "a", "b"},
		{"bogus"},
	}
	for _, args := range tests {
		got, err := parse(t, args...)
		assert.Error(t, err, "%v", args)
		assert.Nil(t, got, "%v", args)
	}
}

func newTestApp(t *testing.T) *app {
	t.Helper()
	now := func() time.Time { return time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC) }
	return &app{
		resolver: command.NewResolver(now),
		engine:   engine.New(engine.Config{DataDir: t.TempDir(), Out: io.Discard, Now: now}),
		log:      logging.Discard(),
	}
}

func TestRunRendersResolutionError(t *testing.T) {
	root := newRootCmd(newTestApp(t).run)
	root.SetArgs([]string{"goal", "-p", "notaperiod", "-t", "1h"})

	var stderr bytes.Buffer
	code := run(root, &stderr, false)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "error: could not parse the goal action.\ncause: invalid goal period")
}

func TestRunDateTimeError(t *testing.T) {
	root := newRootCmd(newTestApp(t).run)
	root.SetArgs([]string{"enter", "yesterday"})

	var stderr bytes.Buffer
	assert.Equal(t, 1, run(root, &stderr, false))
	assert.Contains(t, stderr.String(), "error: could not parse the date/time argument.\ncause: ")
}

func TestRunExecutionError(t *testing.T) {
	root := newRootCmd(newTestApp(t).run)
	root.SetArgs([]string{"start", "missing"})

	var stderr bytes.Buffer
	assert.Equal(t, 2, run(root, &stderr, false))
	assert.Contains(t, stderr.String(), "error: task not found: missing")
}

func TestRunSuccess(t *testing.T) {
	a := newTestApp(t)
	for _, args := range [][]string{
		{"create", "reports"},
		{"start", "reports"},
		{"stop", "--commit"},
		{"goal", "-p", "week", "-t", "40h"},
		{"status"},
	} {
		root := newRootCmd(a.run)
		root.SetArgs(args)
		var stderr bytes.Buffer
		assert.Equal(t, 0, run(root, &stderr, false), "%v: %s", args, stderr.String())
	}
}

func TestOptionalArg(t *testing.T) {
	args := []string{"a"}
	require.NotNil(t, optionalArg(args, 0))
	assert.Equal(t, "a", *optionalArg(args, 0))
	assert.Nil(t, optionalArg(args, 1))
}
