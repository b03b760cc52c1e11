package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/timelog/internal/command"
	"github.com/Tiliavir/timelog/internal/config"
	"github.com/Tiliavir/timelog/internal/engine"
	"github.com/Tiliavir/timelog/internal/logging"
)

const (
	mnemonicDescription = "Primary reference to the task"
	codeDescription     = "Reference to the task used in an external tool"
	forgotDescription   = "Marks date/time as uncertain"
)

// runFunc receives the raw command built by a subcommand.
type runFunc func(raw command.Raw) error

// exitError carries the process exit status for a failure.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

// exitCode maps an error to the process status: 2 for execution failures,
// 1 for everything else (usage and resolution errors).
func exitCode(err error) int {
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return 1
}

func newRootCmd(run runFunc) *cobra.Command {
	root := &cobra.Command{
		Use:   "timelog",
		Short: "timelog: a personal work time tracker",
		Long: `timelog records when you arrive, leave and work on tasks, and tracks
time goals per month, week, day or weekday.
All data is stored as plain files in ~/.timelog/.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newTimestampCmd("enter", "Registers the time the user arrived at the workplace", run,
			func(ts command.RawTimestamp) command.Raw { return command.RawEnter{Timestamp: ts} }),
		newTimestampCmd("exit", "Registers the time the user left the workplace", run,
			func(ts command.RawTimestamp) command.Raw { return command.RawExit{Timestamp: ts} }),
		newCreateCmd(run),
		newEditCmd(run),
		newDeleteCmd(run),
		newStartCmd(run),
		newStopCmd(run),
		newCommitCmd(run),
		newResolveCmd(run),
		newGoalCmd(run),
		newGoalsCmd(run),
		newStatusCmd(run),
	)
	return root
}

// app resolves raw commands and hands them to the engine.
type app struct {
	resolver *command.Resolver
	engine   *engine.Engine
	log      *slog.Logger
}

func (a *app) run(raw command.Raw) error {
	cmd, err := a.resolver.Resolve(raw)
	if err != nil {
		a.log.Warn("resolution failed", "error", err)
		return &exitError{code: 1, err: err}
	}
	a.log.Debug("resolved command", "command", cmd.Name())
	if err := a.engine.Execute(cmd); err != nil {
		return &exitError{code: 2, err: err}
	}
	return nil
}

// Execute is the entry point called from main.
func Execute() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	if cfg.DataDir == "" {
		fmt.Fprintln(os.Stderr, "cannot determine the timelog data directory")
		os.Exit(2)
	}

	log, closeLog, err := logging.Open(cfg.DataDir, logging.ParseLevel(cfg.LogLevel))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}

	a := &app{
		resolver: command.NewResolver(command.SystemClock),
		engine: engine.New(engine.Config{
			DataDir: cfg.DataDir,
			Out:     os.Stdout,
			Now:     command.SystemClock,
			Log:     log,
			Color:   cfg.Color,
		}),
		log: log,
	}

	code := run(newRootCmd(a.run), os.Stderr, cfg.Color)
	_ = closeLog()
	os.Exit(code)
}

// run executes root and renders any failure to stderr.
func run(root *cobra.Command, stderr io.Writer, color bool) int {
	if err := root.Execute(); err != nil {
		fmt.Fprintln(stderr, command.Render(err, color))
		return exitCode(err)
	}
	return 0
}

// optionalArg returns args[i], or nil when it was not given.
func optionalArg(args []string, i int) *string {
	if i >= len(args) {
		return nil
	}
	return &args[i]
}
