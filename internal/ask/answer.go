package ask

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Interval is an inclusive numeric range with Start <= End.
type Interval struct {
	Start float64 `json:"start" yaml:"start"`
	End   float64 `json:"end" yaml:"end"`
}

// Contains reports whether v lies inside the interval.
func (i Interval) Contains(v float64) bool {
	return v >= i.Start && v <= i.End
}

// String renders the interval as start..end.
func (i Interval) String() string {
	return formatFloat(i.Start) + ".." + formatFloat(i.End)
}

// Pair is a selected keyed choice.
type Pair struct {
	Key   Symbol `json:"key" yaml:"key"`
	Label string `json:"label" yaml:"label"`
}

// Pairs holds keyed selections in the order they were chosen.
type Pairs []Pair

// Map converts the selections to a key/label mapping.
func (p Pairs) Map() map[Symbol]string {
	out := make(map[Symbol]string, len(p))
	for _, pair := range p {
		out[pair.Key] = pair.Label
	}
	return out
}

// Answer holds the final typed value of a question.
//
// Value is one of: bool (boolean), string (file), float64 (float), int64
// (integer), Symbol (symbol), []string (array, list-form multiple choice),
// Pairs (keyed multiple choice), map[Symbol]string (hash), Interval (range).
type Answer struct {
	Kind  Kind
	Value any
}

// Bool returns the value of a boolean answer.
func (a Answer) Bool() (bool, bool) {
	v, ok := a.Value.(bool)
	return v, ok
}

// Float returns the value of a float answer.
func (a Answer) Float() (float64, bool) {
	v, ok := a.Value.(float64)
	return v, ok
}

// Int returns the value of an integer answer.
func (a Answer) Int() (int64, bool) {
	v, ok := a.Value.(int64)
	return v, ok
}

// Symbol returns the value of a symbol answer.
func (a Answer) Symbol() (Symbol, bool) {
	v, ok := a.Value.(Symbol)
	return v, ok
}

// Path returns the value of a file answer.
func (a Answer) Path() (string, bool) {
	if a.Kind != KindFile {
		return "", false
	}
	v, ok := a.Value.(string)
	return v, ok
}

// Strings returns the value of an array or list-form multiple choice answer.
func (a Answer) Strings() ([]string, bool) {
	v, ok := a.Value.([]string)
	return v, ok
}

// Pairs returns the value of a keyed multiple choice answer.
func (a Answer) Pairs() (Pairs, bool) {
	v, ok := a.Value.(Pairs)
	return v, ok
}

// Hash returns the value of a hash answer.
func (a Answer) Hash() (map[Symbol]string, bool) {
	v, ok := a.Value.(map[Symbol]string)
	return v, ok
}

// Interval returns the value of a range answer.
func (a Answer) Interval() (Interval, bool) {
	v, ok := a.Value.(Interval)
	return v, ok
}

// String renders the answer for display.
func (a Answer) String() string {
	switch v := a.Value.(type) {
	case nil:
		return ""
	case float64:
		return formatFloat(v)
	case []string:
		return strings.Join(v, ", ")
	case Pairs:
		parts := make([]string, 0, len(v))
		for _, pair := range v {
			parts = append(parts, string(pair.Key)+": "+pair.Label)
		}
		return strings.Join(parts, ", ")
	case map[Symbol]string:
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, string(key))
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, key := range keys {
			parts = append(parts, key+": "+v[Symbol(key)])
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprint(v)
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
