package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"promptly/internal/ask"
	"promptly/internal/config"
)

// runInit builds the handler for the init command.
func runInit(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		filePath := flags.String("file", "", "Path to questionnaire (default: ./.promptly/questions.yml)")
		assumeYes := flags.Bool("yes", false, "Skip the confirmation prompt")
		sessionOpts := bindSessionFlags(flags)
		if code, ok := parseCommandFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		if rejectExtraArgs(cmd, flags, stderr) {
			return ExitUsage
		}

		target := strings.TrimSpace(*filePath)
		if target == "" {
			wd, err := os.Getwd()
			if err != nil {
				fmt.Fprintf(stderr, "Init failed: %v\n", err)
				return ExitError
			}
			target = config.QuestionsPath(wd)
		}
		target, err := filepath.Abs(target)
		if err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}
		if info, err := os.Stat(target); err == nil {
			if info.IsDir() {
				fmt.Fprintf(stderr, "Init failed: questionnaire path %q is a directory\n", target)
				return ExitError
			}
			fmt.Fprintf(stderr, "Init failed: questionnaire already exists at %q\n", target)
			return ExitError
		} else if !os.IsNotExist(err) {
			fmt.Fprintf(stderr, "Init failed: stat questionnaire: %v\n", err)
			return ExitError
		}

		if !*assumeYes {
			env, err := loadEnv()
			if err != nil {
				fmt.Fprintf(stderr, "Invalid environment: %v\n", err)
				return ExitError
			}
			s, err := openSession(env, sessionOpts, stdout, stderr)
			if err != nil {
				fmt.Fprintf(stderr, "Init failed: %v\n", err)
				return ExitError
			}
			defer s.close()
			confirm, err := confirmInit(s, target)
			if err != nil {
				fmt.Fprintf(stderr, "Init failed: %v\n", err)
				return ExitError
			}
			if !confirm {
				fmt.Fprintln(stderr, "Init cancelled.")
				return ExitError
			}
		}

		if err := config.ScaffoldQuestions(target); err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Wrote %s\n", target)
		return ExitOK
	}
}

// confirmInit asks a yes/no question that defaults to yes.
func confirmInit(s *session, target string) (bool, error) {
	yes := "yes"
	q, err := ask.NewQuestion(fmt.Sprintf("Create questionnaire at %s?", target), ask.Options{
		Kind:    ask.KindBoolean,
		Default: &yes,
	})
	if err != nil {
		return false, err
	}
	answer, err := s.engine.Ask(context.Background(), q, s.input, s.output)
	if err != nil {
		return false, err
	}
	confirmed, _ := answer.Bool()
	return confirmed, nil
}
