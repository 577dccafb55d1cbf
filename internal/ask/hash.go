package ask

import (
	"fmt"
	"maps"
	"slices"
	"sort"
	"strings"
)

// hashHandler fills required keys in order, then reads free-form key/value
// pairs until an empty key line or the maximum. A required key rejects empty
// text and can never be removed.
type hashHandler struct {
	question Question
	current  state
	entries  map[Symbol]string
	immune   map[Symbol]struct{}
	slot     int
	pending  Symbol
}

func newHashHandler(q Question) *hashHandler {
	h := &hashHandler{
		question: q,
		current:  stateCollecting,
		entries:  map[Symbol]string{},
		immune:   map[Symbol]struct{}{},
	}
	for _, key := range q.keys {
		h.immune[key] = struct{}{}
	}
	if len(q.keys) > 0 {
		h.current = stateRequired
	}
	return h
}

func (h *hashHandler) state() state { return h.current }

func (h *hashHandler) prompt() []Line {
	switch h.current {
	case stateRequired:
		return []Line{{Tone: TonePrompt, Text: fmt.Sprintf("%s %s:", h.question.text, h.question.keys[h.slot])}}
	case stateAwaitingValue:
		text := fmt.Sprintf("Value for %s:", h.pending)
		if existing, ok := h.entries[h.pending]; ok {
			text = fmt.Sprintf("Value for %s [%s] (empty to remove):", h.pending, existing)
		}
		return []Line{{Tone: TonePrompt, Text: text}}
	default:
		lines := []Line{{Tone: TonePrompt, Text: h.question.text + " (key, empty line to finish)"}}
		if len(h.entries) > 0 {
			lines = append(lines, Line{Tone: ToneSelected, Text: "Entered: " + h.summary()})
		}
		return lines
	}
}

func (h *hashHandler) feed(line string) step {
	switch h.current {
	case stateRequired:
		return h.feedRequired(line)
	case stateAwaitingValue:
		return h.feedValue(line)
	default:
		return h.feedKey(line)
	}
}

func (h *hashHandler) feedRequired(line string) step {
	key := h.question.keys[h.slot]
	if blank(line) {
		return proceed.with(ToneNotice, "A value for %s is required.", key)
	}
	h.entries[key] = strings.TrimSpace(line)
	h.slot++
	if h.slot == len(h.question.keys) {
		h.current = stateCollecting
	}
	return h.afterPair(proceed)
}

func (h *hashHandler) feedKey(line string) step {
	if blank(line) {
		if h.question.bounds.satisfied(len(h.entries)) {
			h.current = stateDone
			return finish
		}
		return proceed.with(ToneNotice, "%s", needMore(h.question.bounds, len(h.entries), "keys"))
	}
	key, err := NormalizeKey(line)
	if err != nil {
		return proceed.with(ToneError, "Invalid key: %q", strings.TrimSpace(line))
	}
	h.pending = key
	h.current = stateAwaitingValue
	return proceed
}

func (h *hashHandler) feedValue(line string) step {
	key := h.pending
	value := strings.TrimSpace(line)
	h.pending = ""
	h.current = stateCollecting
	result := proceed
	if !toggleEntry(h.entries, h.immune, key, value) {
		if _, required := h.immune[key]; required {
			result = result.with(ToneNotice, "%s is required and cannot be removed.", key)
		}
		return result
	}
	if value == "" {
		result = result.with(ToneNotice, "Removed %s", key)
	}
	return h.afterPair(result)
}

// afterPair stops the loop once the mapping reaches its maximum size.
func (h *hashHandler) afterPair(result step) step {
	if h.current != stateRequired && h.question.bounds.full(len(h.entries)) {
		h.current = stateDone
		result.done = true
	}
	return result
}

func (h *hashHandler) summary() string {
	keys := slices.Collect(maps.Keys(h.entries))
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, fmt.Sprintf("%s=%s", key, h.entries[key]))
	}
	return strings.Join(parts, ", ")
}

func (h *hashHandler) value() any {
	return maps.Clone(h.entries)
}
