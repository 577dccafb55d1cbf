package ask

import (
	"fmt"
	"strings"
)

// Choice is one selectable entry of a multiple choice question. Key is empty
// when choices were given as a plain list of labels.
type Choice struct {
	Key   Symbol
	Label string
}

// ChoiceList builds list-form choices from labels.
func ChoiceList(labels ...string) []Choice {
	choices := make([]Choice, 0, len(labels))
	for _, label := range labels {
		choices = append(choices, Choice{Label: label})
	}
	return choices
}

// Options configures a question.
type Options struct {
	Kind    Kind
	Min     *float64
	Max     *float64
	Choices []Choice
	// Keys lists hash keys that are prompted for first and cannot be deleted.
	Keys []string
	// Default replaces empty input for scalar kinds.
	Default *string
}

// Question describes what to ask. It is immutable once built.
type Question struct {
	text       string
	kind       Kind
	bounds     Bounds
	choices    []Choice
	keyed      bool
	keys       []Symbol
	defaultRaw *string
}

// NewQuestion validates opts and builds a Question.
func NewQuestion(text string, opts Options) (Question, error) {
	collector := &issueCollector{}
	if _, ok := kindNames[opts.Kind]; !ok {
		collector.add("type", fmt.Sprintf("unsupported type %s", opts.Kind))
	}
	if opts.Min != nil && *opts.Min < 0 && opts.Kind != KindRange {
		collector.add("min", "must be non-negative")
	}
	if opts.Max != nil && *opts.Max < 0 && opts.Kind != KindRange {
		collector.add("max", "must be non-negative")
	}
	if opts.Min != nil && opts.Max != nil && *opts.Max < *opts.Min {
		collector.add("max", fmt.Sprintf("must be >= min (%g < %g)", *opts.Max, *opts.Min))
	}
	if opts.Max != nil && *opts.Max >= 0 && *opts.Max < 1 && opts.Kind.sized() {
		collector.add("max", "must allow at least one entry")
	}

	q := Question{
		text:   strings.TrimSpace(text),
		kind:   opts.Kind,
		bounds: Bounds{Min: opts.Min, Max: opts.Max}.clone(),
	}
	if opts.Default != nil {
		value := *opts.Default
		q.defaultRaw = &value
	}

	if opts.Kind == KindMultipleChoice {
		q.choices, q.keyed = normalizeChoices(opts.Choices, collector)
		if opts.Min != nil && *opts.Min > float64(len(q.choices)) && len(q.choices) > 0 {
			collector.add("min", fmt.Sprintf("exceeds the %d available choices", len(q.choices)))
		}
	} else if len(opts.Choices) > 0 {
		collector.add("choices", fmt.Sprintf("not supported for type %s", opts.Kind))
	}

	if opts.Kind == KindHash {
		q.keys = normalizeKeys(opts.Keys, collector)
		if opts.Max != nil && float64(len(q.keys)) > *opts.Max {
			collector.add("max", fmt.Sprintf("is smaller than the %d required keys", len(q.keys)))
		}
	} else if len(opts.Keys) > 0 {
		collector.add("keys", fmt.Sprintf("not supported for type %s", opts.Kind))
	}

	if err := collector.result(); err != nil {
		return Question{}, err
	}
	return q, nil
}

func normalizeChoices(choices []Choice, collector *issueCollector) ([]Choice, bool) {
	if len(choices) == 0 {
		collector.add("choices", "must include at least one entry")
		return nil, false
	}
	keyed := choices[0].Key != ""
	seen := map[Symbol]struct{}{}
	out := make([]Choice, 0, len(choices))
	for i, choice := range choices {
		field := fmt.Sprintf("choices[%d]", i)
		if (choice.Key != "") != keyed {
			collector.add(field, "mixes keyed and plain choices")
			continue
		}
		if keyed {
			key, err := NormalizeKey(string(choice.Key))
			if err != nil {
				collector.add(field+".key", fmt.Sprintf("invalid key %q", choice.Key))
				continue
			}
			if _, dup := seen[key]; dup {
				collector.add(field+".key", fmt.Sprintf("duplicate key %q", key))
				continue
			}
			seen[key] = struct{}{}
			choice.Key = key
		}
		if strings.TrimSpace(choice.Label) == "" {
			collector.add(field, "label is required")
			continue
		}
		out = append(out, choice)
	}
	return out, keyed
}

func normalizeKeys(keys []string, collector *issueCollector) []Symbol {
	seen := map[Symbol]struct{}{}
	out := make([]Symbol, 0, len(keys))
	for i, raw := range keys {
		key, err := NormalizeKey(raw)
		if err != nil {
			collector.add(fmt.Sprintf("keys[%d]", i), fmt.Sprintf("invalid key %q", raw))
			continue
		}
		if _, dup := seen[key]; dup {
			collector.add(fmt.Sprintf("keys[%d]", i), fmt.Sprintf("duplicate key %q", key))
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}
	return out
}

// Text returns the prompt text.
func (q Question) Text() string { return q.text }

// Kind returns the declared answer kind.
func (q Question) Kind() Kind { return q.kind }

// Bounds returns a copy of the configured limits.
func (q Question) Bounds() Bounds { return q.bounds.clone() }

// Choices returns a copy of the multiple choice entries.
func (q Question) Choices() []Choice { return append([]Choice(nil), q.choices...) }

// Keyed reports whether choices were given as a key/label mapping.
func (q Question) Keyed() bool { return q.keyed }

// Keys returns a copy of the required hash keys.
func (q Question) Keys() []Symbol { return append([]Symbol(nil), q.keys...) }

// Default returns the default raw text and whether one was configured.
func (q Question) Default() (string, bool) {
	if q.defaultRaw == nil {
		return "", false
	}
	return *q.defaultRaw, true
}
