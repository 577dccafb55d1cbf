package ask

import (
	"fmt"
	"strings"
)

// state names a position in a handler's read loop.
type state int

const (
	stateCollecting state = iota
	stateRequired
	stateAwaitingValue
	stateAwaitingStart
	stateAwaitingEnd
	stateDone
)

func (s state) String() string {
	switch s {
	case stateCollecting:
		return "collecting"
	case stateRequired:
		return "required"
	case stateAwaitingValue:
		return "awaiting_value"
	case stateAwaitingStart:
		return "awaiting_start"
	case stateAwaitingEnd:
		return "awaiting_end"
	case stateDone:
		return "done"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// step is the outcome of feeding one line to a handler.
type step struct {
	done    bool
	notices []Line
}

func (s step) with(tone Tone, format string, args ...any) step {
	s.notices = append(s.notices, Line{Tone: tone, Text: fmt.Sprintf(format, args...)})
	return s
}

var (
	proceed = step{}
	finish  = step{done: true}
)

// handler drives the read-validate loop for one answer shape. The engine
// prints prompt(), reads a line and passes it to feed until a step is done,
// then reads value(). A handler owns its accumulator for a single ask.
type handler interface {
	state() state
	prompt() []Line
	feed(line string) step
	value() any
}

// newHandler selects the handler for q's kind.
func newHandler(q Question) (handler, error) {
	switch {
	case q.kind.scalar():
		return newScalarHandler(q), nil
	case q.kind == KindArray:
		return newArrayHandler(q), nil
	case q.kind == KindMultipleChoice:
		return newChoiceHandler(q), nil
	case q.kind == KindHash:
		return newHashHandler(q), nil
	case q.kind == KindRange:
		return newRangeHandler(q), nil
	default:
		return nil, &ConfigError{Issues: []Issue{{Field: "type", Message: fmt.Sprintf("unsupported type %s", q.kind)}}}
	}
}

// blank reports whether a line counts as the empty terminator.
func blank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// needMore formats the notice shown when a terminator arrives too early.
func needMore(bounds Bounds, have int, noun string) string {
	return fmt.Sprintf("Enter at least %s %s (have %d).", formatFloat(*bounds.Min), noun, have)
}
