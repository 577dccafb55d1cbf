package cli

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"promptly/internal/ask"
	"promptly/internal/config"
	"promptly/internal/question"
)

// now allows tests to pin report timestamps.
var now = time.Now

// runRun builds the handler for the run command.
func runRun(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		filePath := flags.String("file", "", "Path to questionnaire (default: search for .promptly/questions.yml)")
		format := flags.String("format", "", "Report format: yaml|json (default: $PROMPTLY_FORMAT or yaml)")
		outputPath := flags.String("output", "", "Write the report to this file instead of stdout")
		sessionOpts := bindSessionFlags(flags)
		if code, ok := parseCommandFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		if rejectExtraArgs(cmd, flags, stderr) {
			return ExitUsage
		}

		env, err := loadEnv()
		if err != nil {
			fmt.Fprintf(stderr, "Invalid environment: %v\n", err)
			return ExitError
		}
		reportFormat := env.Format
		if value := strings.ToLower(strings.TrimSpace(*format)); value != "" {
			reportFormat = value
		}
		if reportFormat != config.FormatYAML && reportFormat != config.FormatJSON {
			fmt.Fprintf(stderr, "invalid format %q (expected yaml|json)\n", reportFormat)
			return ExitUsage
		}

		resolved, err := resolveQuestionsPath(*filePath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load questionnaire: %v\n", err)
			return ExitError
		}
		doc, err := question.Load(resolved)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load questionnaire:\n%v\n", err)
			return ExitError
		}

		// With a report on stdout the prompts move to stderr.
		promptOut := stdout
		if *outputPath == "" {
			promptOut = stderr
		}
		s, err := openSession(env, sessionOpts, promptOut, stderr)
		if err != nil {
			fmt.Fprintf(stderr, "Run failed: %v\n", err)
			return ExitError
		}
		defer s.close()
		s.logger.Info("questionnaire loaded", "path", resolved, "questions", len(doc.Questions))

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		results, err := question.Run(ctx, s.engine, doc, s.input, s.output)
		if err != nil {
			if errors.Is(err, ask.ErrInputClosed) {
				fmt.Fprintf(stderr, "Run cancelled: %v\n", err)
				return ExitError
			}
			fmt.Fprintf(stderr, "Run failed: %v\n", err)
			return ExitError
		}

		report := question.NewReport(results, now())
		if *outputPath == "" {
			if err := report.Encode(stdout, reportFormat); err != nil {
				fmt.Fprintf(stderr, "Run failed: %v\n", err)
				return ExitError
			}
			return ExitOK
		}
		var buf bytes.Buffer
		if err := report.Encode(&buf, reportFormat); err != nil {
			fmt.Fprintf(stderr, "Run failed: %v\n", err)
			return ExitError
		}
		if err := os.WriteFile(*outputPath, buf.Bytes(), 0o644); err != nil {
			fmt.Fprintf(stderr, "Run failed: write report: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Session %s completed\n", report.Session)
		fmt.Fprintf(stdout, "Report: %s\n", *outputPath)
		return ExitOK
	}
}
