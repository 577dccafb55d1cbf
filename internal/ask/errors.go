package ask

import (
	"errors"
	"fmt"
	"strings"
)

// ErrCoercion indicates raw text did not convert to the declared scalar type.
var ErrCoercion = errors.New("cannot coerce input")

// ErrInputClosed indicates the input ended before the question could be answered.
var ErrInputClosed = errors.New("input closed before answer was complete")

// Issue captures a single configuration problem in a question.
type Issue struct {
	Field   string
	Message string
}

// ConfigError reports a misconfigured question. It is returned before any
// prompting happens.
type ConfigError struct {
	Issues []Issue
}

// Error returns a readable message for configuration failures.
func (err *ConfigError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("invalid question: %s", strings.Join(parts, "; "))
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
	return &ConfigError{Issues: collector.issues}
}

func coercionError(kind Kind, raw string) error {
	return fmt.Errorf("%w: %q is not a valid %s", ErrCoercion, raw, kind)
}
