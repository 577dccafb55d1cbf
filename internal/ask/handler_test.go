package ask

import (
	"reflect"
	"testing"
)

func feedAll(t *testing.T, h handler, lines ...string) []state {
	t.Helper()
	states := make([]state, 0, len(lines))
	for _, line := range lines {
		h.feed(line)
		states = append(states, h.state())
	}
	return states
}

func newTestQuestion(t *testing.T, opts Options) Question {
	t.Helper()
	q, err := NewQuestion("Q", opts)
	if err != nil {
		t.Fatalf("new question: %v", err)
	}
	return q
}

// TestHashTransitions verifies the hash state machine moves between key,
// value and required slots.
func TestHashTransitions(t *testing.T) {
	h := newHashHandler(newTestQuestion(t, Options{Kind: KindHash, Keys: []string{"name"}}))
	if h.state() != stateRequired {
		t.Fatalf("expected required state, got %s", h.state())
	}
	got := feedAll(t, h, "", "Ada", "role", "admin", "")
	want := []state{stateRequired, stateCollecting, stateAwaitingValue, stateCollecting, stateDone}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

// TestRangeTransitions verifies failed tokens keep their state and invalid
// intervals restart from the start token.
func TestRangeTransitions(t *testing.T) {
	h := newRangeHandler(newTestQuestion(t, Options{Kind: KindRange}))
	got := feedAll(t, h, "x", "3", "y", "1", "1", "3")
	want := []state{stateAwaitingStart, stateAwaitingEnd, stateAwaitingEnd, stateAwaitingStart, stateAwaitingEnd, stateDone}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if h.value() != (Interval{Start: 1, End: 3}) {
		t.Fatalf("unexpected interval %v", h.value())
	}
}

// TestChoiceIgnoresInvalidSilently verifies invalid selections emit nothing.
func TestChoiceIgnoresInvalidSilently(t *testing.T) {
	h := newChoiceHandler(newTestQuestion(t, Options{Kind: KindMultipleChoice, Choices: ChoiceList("a", "b")}))
	for _, line := range []string{"0", "3", "x", "1.5"} {
		result := h.feed(line)
		if result.done || len(result.notices) != 0 {
			t.Fatalf("expected %q to be ignored, got %+v", line, result)
		}
	}
	if len(h.selected) != 0 {
		t.Fatalf("expected no selection, got %v", h.selected)
	}
}

// TestChoiceSelectionOrder verifies values follow selection order.
func TestChoiceSelectionOrder(t *testing.T) {
	h := newChoiceHandler(newTestQuestion(t, Options{Kind: KindMultipleChoice, Choices: ChoiceList("a", "b", "c")}))
	feedAll(t, h, "3", "1", "")
	if got := h.value(); !reflect.DeepEqual(got, []string{"c", "a"}) {
		t.Fatalf("expected [c a], got %v", got)
	}
}

// TestToggleMember verifies add-if-absent and remove-if-present.
func TestToggleMember(t *testing.T) {
	seq := toggleMember([]string{"a", "b", "c"}, "b")
	if !reflect.DeepEqual(seq, []string{"a", "c"}) {
		t.Fatalf("expected [a c], got %v", seq)
	}
	seq = toggleMember(seq, "b")
	if !reflect.DeepEqual(seq, []string{"a", "c", "b"}) {
		t.Fatalf("expected [a c b], got %v", seq)
	}
}

// TestToggleMemberDoesNotAlias verifies removal never rewrites the input.
func TestToggleMemberDoesNotAlias(t *testing.T) {
	original := []string{"a", "b", "c"}
	_ = toggleMember(original, "a")
	if !reflect.DeepEqual(original, []string{"a", "b", "c"}) {
		t.Fatalf("expected input untouched, got %v", original)
	}
}

// TestToggleEntry verifies set, delete and required-key immunity.
func TestToggleEntry(t *testing.T) {
	entries := map[Symbol]string{"keep": "1", "drop": "2"}
	immune := map[Symbol]struct{}{"keep": {}}
	if !toggleEntry(entries, immune, "drop", "") {
		t.Fatalf("expected drop to be removed")
	}
	if toggleEntry(entries, immune, "keep", "") {
		t.Fatalf("expected keep to be immune")
	}
	if toggleEntry(entries, immune, "absent", "") {
		t.Fatalf("expected absent key to be a no-op")
	}
	if !toggleEntry(entries, immune, "keep", "3") {
		t.Fatalf("expected keep to be overwritten")
	}
	if !reflect.DeepEqual(entries, map[Symbol]string{"keep": "3"}) {
		t.Fatalf("unexpected entries %v", entries)
	}
}

// TestBounds verifies size and value checks.
func TestBounds(t *testing.T) {
	b := Bounds{Min: Limit(1), Max: Limit(3)}
	if b.satisfied(0) || !b.satisfied(1) {
		t.Fatalf("unexpected satisfied results")
	}
	if b.full(2) || !b.full(3) {
		t.Fatalf("unexpected full results")
	}
	reaching := []Interval{{Start: 0, End: 1}, {Start: 3, End: 9}, {Start: 2, End: 2}, {Start: -5, End: 5}}
	for _, i := range reaching {
		if !b.reaches(i) {
			t.Fatalf("expected %s to reach 1..3", i)
		}
	}
	missing := []Interval{{Start: -2, End: 0.5}, {Start: 3.5, End: 4}, {Start: 2, End: 1}}
	for _, i := range missing {
		if b.reaches(i) {
			t.Fatalf("expected %s to miss 1..3", i)
		}
	}
	var open Bounds
	if !open.satisfied(0) || open.full(100) || !open.reaches(Interval{Start: -1e9, End: 1e9}) {
		t.Fatalf("expected unbounded checks to pass")
	}
}
