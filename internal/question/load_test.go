package question

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"promptly/internal/ask"
)

// TestLoadYAML verifies YAML questionnaires load and normalize properly.
func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "questions.yml")
	payload := `version: 1
questions:
  - id: name
    question: "  What is your name? "
    type: symbol
  - question: Which pets?
    type: multiple_choice
    max: 2
    choices:
      dog: Dog
      cat: Cat
      fish: Fish
  - id: ok
    question: Continue?
    type: bool
    default: true
`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write doc: %v", err)
	}
	doc, err := Load(path)
	if err != nil {
		t.Fatalf("load doc: %v", err)
	}
	if doc.Version != 1 {
		t.Fatalf("expected version 1, got %d", doc.Version)
	}
	if len(doc.Questions) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(doc.Questions))
	}
	if doc.Questions[0].Prompt != "What is your name?" {
		t.Fatalf("expected trimmed prompt, got %q", doc.Questions[0].Prompt)
	}
	if doc.Questions[1].ID != "q2" {
		t.Fatalf("expected generated id q2, got %q", doc.Questions[1].ID)
	}
	choices := doc.Questions[1].Choices
	if !choices.Keyed || choices.Len() != 3 {
		t.Fatalf("unexpected choices: %+v", choices)
	}
	if choices.Items[0].Key != "dog" || choices.Items[2].Label != "Fish" {
		t.Fatalf("expected file order, got %+v", choices.Items)
	}
	if doc.Questions[2].Default == nil || *doc.Questions[2].Default != "true" {
		t.Fatalf("expected default true, got %v", doc.Questions[2].Default)
	}
}

// TestLoadJSON verifies JSON questionnaires keep object key order.
func TestLoadJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "questions.json")
	payload := `{
  "version": 1,
  "questions": [
    {
      "id": "color",
      "question": "Which color?",
      "type": "choices",
      "choices": {"zeta": "Red", "alpha": "Blue"}
    },
    {
      "id": "age",
      "question": "How old?",
      "type": "integer",
      "default": 42
    }
  ]
}`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write doc: %v", err)
	}
	doc, err := Load(path)
	if err != nil {
		t.Fatalf("load doc: %v", err)
	}
	items := doc.Questions[0].Choices.Items
	if len(items) != 2 || items[0].Key != "zeta" || items[1].Key != "alpha" {
		t.Fatalf("unexpected choice order: %+v", items)
	}
	if doc.Questions[1].Default == nil || *doc.Questions[1].Default != "42" {
		t.Fatalf("expected numeric default kept as text, got %v", doc.Questions[1].Default)
	}
}

// TestLoadValidationErrors verifies invalid questionnaires return validation errors.
func TestLoadValidationErrors(t *testing.T) {
	payload := `version: 1
questions:
  - id: dup
    question: "Q1"
    type: integer
  - id: dup
    question: "Q2"
    type: multiple_choice
  - id: sized
    question: "Q3"
    type: array
    min: 3
    max: 1
`
	_, err := Parse([]byte(payload), false)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected validation error type, got %T", err)
	}
	fields := issueFields(validationErr)
	for _, want := range []string{"questions[1].id", "questions[1].choices", "questions[2].max"} {
		if !fields[want] {
			t.Fatalf("expected issue for %s, got %v", want, validationErr.Issues)
		}
	}
}

// TestParseSchemaRejectsUnknownType verifies the schema enum runs before building.
func TestParseSchemaRejectsUnknownType(t *testing.T) {
	payload := `version: 1
questions:
  - id: c
    question: "Favourite colour?"
    type: colour
`
	_, err := Parse([]byte(payload), false)
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if !issueFields(validationErr)["questions[0].type"] {
		t.Fatalf("expected type issue, got %v", validationErr.Issues)
	}
}

// TestParseRejectsUnknownFields verifies strict decoding.
func TestParseRejectsUnknownFields(t *testing.T) {
	payload := `version: 1
questions:
  - id: a
    question: "Q"
    type: symbol
    answers: [x]
`
	if _, err := Parse([]byte(payload), false); err == nil {
		t.Fatalf("expected unknown field error")
	}
	if _, err := Parse([]byte(`{"version":1,"questions":[{"question":"Q","type":"symbol","extra":1}]}`), true); err == nil {
		t.Fatalf("expected unknown field error for json")
	}
}

// TestParseRequiresVersionAndQuestions verifies top-level checks.
func TestParseRequiresVersionAndQuestions(t *testing.T) {
	_, err := Parse([]byte("questions: []\n"), false)
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	fields := issueFields(validationErr)
	if !fields["version"] || !fields["questions"] {
		t.Fatalf("unexpected issues: %v", validationErr.Issues)
	}
	if !strings.HasPrefix(err.Error(), "questionnaire validation failed: ") {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

// TestParseMultipleDocuments verifies only one document is accepted.
func TestParseMultipleDocuments(t *testing.T) {
	payload := "version: 1\nquestions:\n  - question: Q\n    type: symbol\n---\nversion: 1\n"
	if _, err := Parse([]byte(payload), false); err == nil {
		t.Fatalf("expected multiple document error")
	}
}

// TestQuestionBuildUnknownType verifies Build reports the type field.
func TestQuestionBuildUnknownType(t *testing.T) {
	_, err := Question{Prompt: "Q", Type: "nope"}.Build()
	var cfgErr *ask.ConfigError
	if !errors.As(err, &cfgErr) || cfgErr.Issues[0].Field != "type" {
		t.Fatalf("expected type config error, got %v", err)
	}
}

func issueFields(err *ValidationError) map[string]bool {
	fields := map[string]bool{}
	for _, issue := range err.Issues {
		fields[issue.Field] = true
	}
	return fields
}
