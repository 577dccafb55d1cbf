package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"promptly/internal/ask"
	"promptly/internal/config"
	"promptly/internal/say"
)

// promptInput allows tests to override stdin for prompts.
var promptInput io.Reader = os.Stdin

// loadEnv allows tests to inject environment settings.
var loadEnv = config.LoadEnv

// sessionFlags are the terminal settings shared by prompting commands.
type sessionFlags struct {
	color   *string
	logPath *string
}

func bindSessionFlags(flags *flag.FlagSet) sessionFlags {
	return sessionFlags{
		color:   flags.String("color", "", "Color mode: auto|always|never (default: $PROMPTLY_COLOR or auto)"),
		logPath: flags.String("log", "", "Write debug logs as JSON to this file (default: $PROMPTLY_LOG)"),
	}
}

// session bundles the engine with the terminal it prompts on.
type session struct {
	engine *ask.Engine
	input  ask.LineReader
	output ask.Sink
	logger *slog.Logger
	close  func() error
}

// openSession resolves color and logging, then builds an engine that prompts
// on promptOut and reads from promptInput.
func openSession(env config.Env, flags sessionFlags, promptOut, stderr io.Writer) (*session, error) {
	mode := env.Color
	if value := strings.TrimSpace(*flags.color); value != "" {
		mode = value
	}
	decision, err := say.ResolveColor(mode, env.DisableColor(), promptOut)
	if err != nil {
		return nil, err
	}
	if decision.Warning != "" {
		fmt.Fprintln(stderr, decision.Warning)
	}

	logPath := env.LogPath
	if value := strings.TrimSpace(*flags.logPath); value != "" {
		logPath = value
	}
	logger := slog.New(slog.DiscardHandler)
	closeLog := func() error { return nil }
	if logPath != "" {
		file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		logger = slog.New(slog.NewJSONHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug}))
		closeLog = file.Close
	}

	in := promptInput
	if in == nil {
		in = os.Stdin
	}
	return &session{
		engine: ask.NewEngine(ask.WithLogger(logger)),
		input:  ask.NewReader(in),
		output: say.NewSink(promptOut, decision.Color),
		logger: logger,
		close:  closeLog,
	}, nil
}

// parseCommandFlags parses args and prints usage on failure. It returns false
// with an exit code when the command should stop.
func parseCommandFlags(cmd *Command, flags *flag.FlagSet, args []string, stdout, stderr io.Writer) (int, bool) {
	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			printCommandUsage(cmd, stdout)
			return ExitOK, false
		}
		fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
		printCommandUsage(cmd, stderr)
		return ExitUsage, false
	}
	return ExitOK, true
}

// rejectExtraArgs reports positional arguments for commands that take none.
func rejectExtraArgs(cmd *Command, flags *flag.FlagSet, stderr io.Writer) bool {
	if flags.NArg() == 0 {
		return false
	}
	fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
	printCommandUsage(cmd, stderr)
	return true
}
