package cli

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"promptly/internal/ask"
	"promptly/internal/question"
)

// stringList collects a repeated string flag.
type stringList []string

func (l *stringList) String() string { return strings.Join(*l, ",") }

func (l *stringList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// limitFlag is an optional numeric flag.
type limitFlag struct {
	value *float64
}

func (f *limitFlag) String() string {
	if f.value == nil {
		return ""
	}
	return strconv.FormatFloat(*f.value, 'g', -1, 64)
}

func (f *limitFlag) Set(raw string) error {
	parsed, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return fmt.Errorf("not a number: %q", raw)
	}
	f.value = &parsed
	return nil
}

// runAsk builds the handler for the ask command.
func runAsk(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		kindName := flags.String("type", "symbol", "Answer type: "+kindList())
		var minLimit, maxLimit limitFlag
		flags.Var(&minLimit, "min", "Minimum entries, or lowest allowed range value")
		flags.Var(&maxLimit, "max", "Maximum entries, or highest allowed range value")
		var choices, keys stringList
		flags.Var(&choices, "choice", "Multiple choice entry as label or key=label (repeatable)")
		flags.Var(&keys, "key", "Required hash key (repeatable)")
		defaultValue := flags.String("default", "", "Value used when the answer is left empty")
		format := flags.String("format", "text", "Answer output format: text|json")
		sessionOpts := bindSessionFlags(flags)
		if code, ok := parseCommandFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		prompt := strings.TrimSpace(strings.Join(flags.Args(), " "))
		if prompt == "" {
			fmt.Fprintln(stderr, "question text is required")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		switch *format {
		case "text", "json":
		default:
			fmt.Fprintf(stderr, "invalid format %q (expected text|json)\n", *format)
			return ExitUsage
		}

		kind, err := ask.ParseKind(*kindName)
		if err != nil {
			fmt.Fprintf(stderr, "Invalid question: %v\n", err)
			return ExitUsage
		}
		opts := ask.Options{
			Kind:    kind,
			Min:     minLimit.value,
			Max:     maxLimit.value,
			Choices: parseChoiceFlags(choices),
			Keys:    keys,
		}
		flags.Visit(func(f *flag.Flag) {
			if f.Name == "default" {
				opts.Default = defaultValue
			}
		})
		q, err := ask.NewQuestion(prompt, opts)
		if err != nil {
			fmt.Fprintf(stderr, "Invalid question:\n%v\n", err)
			return ExitUsage
		}

		env, err := loadEnv()
		if err != nil {
			fmt.Fprintf(stderr, "Invalid environment: %v\n", err)
			return ExitError
		}
		// Prompts go to stderr so the answer alone can be piped.
		s, err := openSession(env, sessionOpts, stderr, stderr)
		if err != nil {
			fmt.Fprintf(stderr, "Ask failed: %v\n", err)
			return ExitError
		}
		defer s.close()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		answer, err := s.engine.Ask(ctx, q, s.input, s.output)
		if err != nil {
			if errors.Is(err, ask.ErrInputClosed) {
				fmt.Fprintln(stderr, "Ask cancelled: input closed")
				return ExitError
			}
			fmt.Fprintf(stderr, "Ask failed: %v\n", err)
			return ExitError
		}
		return printAnswer(stdout, stderr, answer, *format)
	}
}

func printAnswer(stdout, stderr io.Writer, answer ask.Answer, format string) int {
	if format == "json" {
		encoded, err := json.Marshal(question.PlainValue(answer.Value))
		if err != nil {
			fmt.Fprintf(stderr, "Encode answer: %v\n", err)
			return ExitError
		}
		fmt.Fprintln(stdout, string(encoded))
		return ExitOK
	}
	fmt.Fprintln(stdout, answer.String())
	return ExitOK
}

// parseChoiceFlags turns label or key=label entries into choices.
func parseChoiceFlags(entries []string) []ask.Choice {
	choices := make([]ask.Choice, 0, len(entries))
	for _, entry := range entries {
		key, label, keyed := strings.Cut(entry, "=")
		if !keyed {
			choices = append(choices, ask.Choice{Label: entry})
			continue
		}
		choices = append(choices, ask.Choice{Key: ask.Symbol(strings.TrimSpace(key)), Label: label})
	}
	return choices
}

func kindList() string {
	names := make([]string, 0, len(ask.Kinds()))
	for _, kind := range ask.Kinds() {
		names = append(names, kind.String())
	}
	return strings.Join(names, "|")
}
