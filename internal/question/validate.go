package question

import (
	"errors"
	"fmt"
	"strings"

	"promptly/internal/ask"
)

// Issue captures a validation problem in a questionnaire.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("questionnaire validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// Normalize trims whitespace, fills missing ids and validates every
// question by building it.
func Normalize(doc Questionnaire) (Questionnaire, error) {
	collector := &issueCollector{}
	if doc.Version == 0 {
		collector.add("version", "is required")
	} else if doc.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", doc.Version))
	}
	if len(doc.Questions) == 0 {
		collector.add("questions", "must include at least one entry")
	}

	seenIDs := map[string]struct{}{}
	for i, question := range doc.Questions {
		prefix := fmt.Sprintf("questions[%d]", i)
		question.ID = strings.TrimSpace(question.ID)
		if question.ID == "" {
			question.ID = fmt.Sprintf("q%d", i+1)
		}
		if _, exists := seenIDs[question.ID]; exists {
			collector.add(prefix+".id", fmt.Sprintf("duplicate id %q", question.ID))
		} else {
			seenIDs[question.ID] = struct{}{}
		}

		question.Prompt = strings.TrimSpace(question.Prompt)
		if question.Prompt == "" {
			collector.add(prefix+".question", "is required")
		}
		question.Type = strings.TrimSpace(question.Type)
		if question.Type == "" {
			collector.add(prefix+".type", "is required")
		} else if _, err := question.Build(); err != nil {
			addBuildIssues(collector, prefix, err)
		}
		question.Keys = normalizeStringSlice(question.Keys)
		doc.Questions[i] = question
	}

	if err := collector.result(); err != nil {
		return Questionnaire{}, err
	}
	return doc, nil
}

// Build converts a questionnaire entry into an ask question.
func (q Question) Build() (ask.Question, error) {
	kind, err := ask.ParseKind(q.Type)
	if err != nil {
		return ask.Question{}, &ask.ConfigError{Issues: []ask.Issue{{Field: "type", Message: err.Error()}}}
	}
	return ask.NewQuestion(q.Prompt, ask.Options{
		Kind:    kind,
		Min:     q.Min,
		Max:     q.Max,
		Choices: q.Choices.Items,
		Keys:    q.Keys,
		Default: q.Default.raw(),
	})
}

func addBuildIssues(collector *issueCollector, prefix string, err error) {
	var cfgErr *ask.ConfigError
	if !errors.As(err, &cfgErr) {
		collector.add(prefix, err.Error())
		return
	}
	for _, issue := range cfgErr.Issues {
		collector.add(prefix+"."+issue.Field, issue.Message)
	}
}

func normalizeStringSlice(values []string) []string {
	if values == nil {
		return nil
	}
	normalized := make([]string, 0, len(values))
	for _, value := range values {
		normalized = append(normalized, strings.TrimSpace(value))
	}
	return normalized
}
