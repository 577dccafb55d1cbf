package cli

import (
	"flag"
	"fmt"
	"io"

	"promptly/internal/question"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		filePath := flags.String("file", "", "Path to questionnaire (default: search for .promptly/questions.yml)")
		if code, ok := parseCommandFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		if rejectExtraArgs(cmd, flags, stderr) {
			return ExitUsage
		}

		resolved, err := resolveQuestionsPath(*filePath)
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%v\n", err)
			return ExitError
		}

		doc, err := question.Load(resolved)
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%s\n", err.Error())
			return ExitError
		}

		fmt.Fprintf(stdout, "Questionnaire OK (%d questions)\n", len(doc.Questions))
		return ExitOK
	}
}

// runSchema builds the handler for the schema command.
func runSchema(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		if len(args) > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %v\n", args)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		fmt.Fprint(stdout, question.Schema())
		return ExitOK
	}
}
