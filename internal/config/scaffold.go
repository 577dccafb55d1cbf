package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const defaultQuestionnaire = `version: 1
questions:
  - id: name
    question: "What is your name?"
    type: symbol
  - id: age
    question: "How old are you?"
    type: integer
  - id: languages
    question: "Which languages do you use?"
    type: multiple_choice
    min: 1
    choices:
      go: Go
      rust: Rust
      python: Python
  - id: profile
    question: "Describe your setup"
    type: hash
    keys: [editor]
  - id: hours
    question: "Which hours are you available?"
    type: range
    min: 0
    max: 24
  - id: subscribe
    question: "Subscribe to updates?"
    type: boolean
    default: "no"
`

// ScaffoldQuestions writes a starter questionnaire to path, creating parent
// directories. It refuses to overwrite an existing file.
func ScaffoldQuestions(path string) error {
	if path == "" {
		return fmt.Errorf("questionnaire path is required")
	}
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return fmt.Errorf("questionnaire path %q is a directory", path)
		}
		return fmt.Errorf("questionnaire already exists at %q", path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat questionnaire: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create questionnaire dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultQuestionnaire), 0o644); err != nil {
		return fmt.Errorf("write questionnaire: %w", err)
	}
	return nil
}
