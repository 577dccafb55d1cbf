package question

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"promptly/internal/ask"
	"promptly/internal/ask/asktest"
)

const petsQuestionnaire = `version: 1
questions:
  - id: name
    question: What is your name?
    type: symbol
  - id: pets
    question: Which pets?
    type: multiple_choice
    choices:
      cat: Cat
      dog: Dog
  - id: ok
    question: Continue?
    type: boolean
    default: "yes"
`

func mustParse(t *testing.T, payload string) Questionnaire {
	t.Helper()
	doc, err := Parse([]byte(payload), false)
	if err != nil {
		t.Fatalf("parse doc: %v", err)
	}
	return doc
}

// TestRunAsksInOrder verifies answers follow questionnaire order over one input.
func TestRunAsksInOrder(t *testing.T) {
	doc := mustParse(t, petsQuestionnaire)
	recorder := &asktest.Recorder{}
	results, err := Run(asktest.Context(t, 0), ask.NewEngine(), doc, asktest.Lines("Ada Lovelace", "2", "", ""), recorder)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if results[0].ID != "name" || results[0].Answer.Value != ask.Symbol("ada_lovelace") {
		t.Fatalf("unexpected name result: %+v", results[0])
	}
	pairs, ok := results[1].Answer.Pairs()
	if !ok || len(pairs) != 1 || pairs[0].Key != "dog" {
		t.Fatalf("unexpected pets result: %+v", results[1].Answer)
	}
	if value, ok := results[2].Answer.Bool(); !ok || !value {
		t.Fatalf("expected default yes, got %+v", results[2].Answer)
	}
	if recorder.Count(ask.TonePrompt) < 3 {
		t.Fatalf("expected a prompt per question, got %v", recorder.Lines())
	}
}

// TestRunStopsOnClosedInput verifies partial answers are dropped.
func TestRunStopsOnClosedInput(t *testing.T) {
	doc := mustParse(t, "version: 1\nquestions:\n  - id: name\n    question: Name?\n    type: symbol\n  - id: age\n    question: Age?\n    type: integer\n")
	results, err := Run(asktest.Context(t, 0), ask.NewEngine(), doc, asktest.Lines("Ada", "old"), nil)
	if !errors.Is(err, ask.ErrInputClosed) {
		t.Fatalf("expected input closed, got %v", err)
	}
	if !strings.Contains(err.Error(), "question age") {
		t.Fatalf("expected question id in error, got %v", err)
	}
	if results != nil {
		t.Fatalf("expected no results, got %+v", results)
	}
}

// TestNewReportEncodes verifies both report formats carry plain values.
func TestNewReportEncodes(t *testing.T) {
	results := []Result{
		{ID: "name", Answer: ask.Answer{Kind: ask.KindSymbol, Value: ask.Symbol("ada")}},
		{ID: "pets", Answer: ask.Answer{Kind: ask.KindMultipleChoice, Value: ask.Pairs{{Key: "dog", Label: "Dog"}}}},
		{ID: "meta", Answer: ask.Answer{Kind: ask.KindHash, Value: map[ask.Symbol]string{"lang": "go"}}},
		{ID: "span", Answer: ask.Answer{Kind: ask.KindRange, Value: ask.Interval{Start: 1, End: 4}}},
	}
	report := NewReport(results, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))
	if report.Session == "" {
		t.Fatalf("expected session id")
	}

	var jsonOut bytes.Buffer
	if err := report.Encode(&jsonOut, "json"); err != nil {
		t.Fatalf("encode json: %v", err)
	}
	var decoded struct {
		Answers []struct {
			ID    string `json:"id"`
			Type  string `json:"type"`
			Value any    `json:"value"`
		} `json:"answers"`
	}
	if err := json.Unmarshal(jsonOut.Bytes(), &decoded); err != nil {
		t.Fatalf("decode json: %v", err)
	}
	if decoded.Answers[0].Value != "ada" || decoded.Answers[1].Type != "multiple_choice" {
		t.Fatalf("unexpected json answers: %+v", decoded.Answers)
	}
	meta, ok := decoded.Answers[2].Value.(map[string]any)
	if !ok || meta["lang"] != "go" {
		t.Fatalf("unexpected hash value: %#v", decoded.Answers[2].Value)
	}

	var yamlOut bytes.Buffer
	if err := report.Encode(&yamlOut, "yaml"); err != nil {
		t.Fatalf("encode yaml: %v", err)
	}
	var generic map[string]any
	if err := yaml.Unmarshal(yamlOut.Bytes(), &generic); err != nil {
		t.Fatalf("decode yaml: %v", err)
	}
	if generic["session"] != report.Session {
		t.Fatalf("expected session in yaml, got %v", generic["session"])
	}

	if err := report.Encode(&bytes.Buffer{}, "toml"); err == nil {
		t.Fatalf("expected unsupported format error")
	}
}
