package ask

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// choiceHandler toggles numbered choices until an empty line or the maximum.
// Selections keep the order in which they were made.
type choiceHandler struct {
	question Question
	current  state
	selected []int
}

func newChoiceHandler(q Question) *choiceHandler {
	return &choiceHandler{question: q, current: stateCollecting}
}

func (h *choiceHandler) state() state { return h.current }

func (h *choiceHandler) prompt() []Line {
	lines := make([]Line, 0, len(h.question.choices)+1)
	lines = append(lines, Line{Tone: TonePrompt, Text: h.question.text})
	for i, choice := range h.question.choices {
		index := i + 1
		if slices.Contains(h.selected, index) {
			lines = append(lines, Line{Tone: ToneSelected, Text: fmt.Sprintf("[x] %d) %s", index, choice.Label)})
			continue
		}
		lines = append(lines, Line{Tone: ToneChoice, Text: fmt.Sprintf("[ ] %d) %s", index, choice.Label)})
	}
	return lines
}

func (h *choiceHandler) feed(line string) step {
	if blank(line) {
		if h.question.bounds.satisfied(len(h.selected)) {
			h.current = stateDone
			return finish
		}
		return proceed.with(ToneNotice, "%s", needMore(h.question.bounds, len(h.selected), "choices"))
	}
	index, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || index < 1 || index > len(h.question.choices) {
		return proceed
	}
	h.selected = toggleMember(h.selected, index)
	if h.question.bounds.full(len(h.selected)) {
		h.current = stateDone
		return finish
	}
	return proceed
}

func (h *choiceHandler) value() any {
	if h.question.keyed {
		pairs := make(Pairs, 0, len(h.selected))
		for _, index := range h.selected {
			choice := h.question.choices[index-1]
			pairs = append(pairs, Pair{Key: choice.Key, Label: choice.Label})
		}
		return pairs
	}
	labels := make([]string, 0, len(h.selected))
	for _, index := range h.selected {
		labels = append(labels, h.question.choices[index-1].Label)
	}
	return labels
}
