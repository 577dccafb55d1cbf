package ask

import "fmt"

// rangeHandler reads a start and an end value. A token that does not parse is
// asked for again on its own; an interval that fails validation is discarded
// and both ends are read again.
type rangeHandler struct {
	question Question
	current  state
	start    float64
	result   Interval
}

func newRangeHandler(q Question) *rangeHandler {
	return &rangeHandler{question: q, current: stateAwaitingStart}
}

func (h *rangeHandler) state() state { return h.current }

func (h *rangeHandler) prompt() []Line {
	if h.current == stateAwaitingEnd {
		return []Line{{Tone: TonePrompt, Text: fmt.Sprintf("%s end (start %s):", h.question.text, formatFloat(h.start))}}
	}
	return []Line{{Tone: TonePrompt, Text: h.question.text + " start" + h.limits() + ":"}}
}

func (h *rangeHandler) feed(line string) step {
	value, err := CoerceFloat(line)
	if err != nil {
		return proceed.with(ToneError, "Invalid number: %q", line)
	}
	if h.current != stateAwaitingEnd {
		h.start = value
		h.current = stateAwaitingEnd
		return proceed
	}
	candidate := Interval{Start: h.start, End: value}
	if !h.question.bounds.reaches(candidate) {
		h.current = stateAwaitingStart
		return proceed.with(ToneNotice, "Invalid range %s%s; start again.", candidate, h.limits())
	}
	h.result = candidate
	h.current = stateDone
	return finish
}

// limits describes the configured bounds for prompts and notices.
func (h *rangeHandler) limits() string {
	bounds := h.question.bounds
	switch {
	case bounds.Min != nil && bounds.Max != nil:
		return fmt.Sprintf(" (must overlap %s..%s)", formatFloat(*bounds.Min), formatFloat(*bounds.Max))
	case bounds.Min != nil:
		return fmt.Sprintf(" (must reach %s)", formatFloat(*bounds.Min))
	case bounds.Max != nil:
		return fmt.Sprintf(" (must start by %s)", formatFloat(*bounds.Max))
	default:
		return ""
	}
}

func (h *rangeHandler) value() any { return h.result }
