package ask

import "strings"

// scalarHandler reads a single line and coerces it to the declared kind.
type scalarHandler struct {
	question Question
	current  state
	result   any
}

func newScalarHandler(q Question) *scalarHandler {
	return &scalarHandler{question: q, current: stateCollecting}
}

func (h *scalarHandler) state() state { return h.current }

func (h *scalarHandler) prompt() []Line {
	text := h.question.text
	if def, ok := h.question.Default(); ok {
		text += " [" + def + "]"
	}
	return []Line{{Tone: TonePrompt, Text: text}}
}

func (h *scalarHandler) feed(line string) step {
	raw := strings.TrimSpace(line)
	if def, ok := h.question.Default(); ok && raw == "" {
		raw = def
	}
	value, err := coerceScalar(h.question.kind, raw)
	if err != nil {
		return proceed.with(ToneError, "Invalid %s: %q", h.question.kind, raw)
	}
	h.result = value
	h.current = stateDone
	return finish
}

func (h *scalarHandler) value() any { return h.result }
