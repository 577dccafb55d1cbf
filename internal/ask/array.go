package ask

import (
	"slices"
	"strings"
)

// arrayHandler collects free-text entries until an empty line or the maximum.
// Entering an existing value again removes it.
type arrayHandler struct {
	question Question
	current  state
	entries  []string
}

func newArrayHandler(q Question) *arrayHandler {
	return &arrayHandler{question: q, current: stateCollecting, entries: []string{}}
}

func (h *arrayHandler) state() state { return h.current }

func (h *arrayHandler) prompt() []Line {
	lines := []Line{{Tone: TonePrompt, Text: h.question.text}}
	if len(h.entries) > 0 {
		lines = append(lines, Line{Tone: ToneSelected, Text: "Entered: " + strings.Join(h.entries, ", ")})
	}
	return lines
}

func (h *arrayHandler) feed(line string) step {
	if blank(line) {
		if h.question.bounds.satisfied(len(h.entries)) {
			h.current = stateDone
			return finish
		}
		return proceed.with(ToneNotice, "%s", needMore(h.question.bounds, len(h.entries), "entries"))
	}
	entry := strings.TrimSpace(line)
	removed := slices.Contains(h.entries, entry)
	h.entries = toggleMember(h.entries, entry)
	result := proceed
	if removed {
		result = result.with(ToneNotice, "Removed %q", entry)
	}
	if h.question.bounds.full(len(h.entries)) {
		h.current = stateDone
		result.done = true
	}
	return result
}

func (h *arrayHandler) value() any {
	return append([]string{}, h.entries...)
}
