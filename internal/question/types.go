package question

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Questionnaire defines the questionnaire schema loaded from JSON or YAML.
type Questionnaire struct {
	Version   int        `json:"version" yaml:"version"`
	Questions []Question `json:"questions" yaml:"questions"`
}

// Question represents a single entry of a questionnaire.
type Question struct {
	ID      string   `json:"id" yaml:"id"`
	Prompt  string   `json:"question" yaml:"question"`
	Type    string   `json:"type" yaml:"type"`
	Min     *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max     *float64 `json:"max,omitempty" yaml:"max,omitempty"`
	Choices Choices  `json:"choices,omitempty" yaml:"choices,omitempty"`
	Keys    []string `json:"keys,omitempty" yaml:"keys,omitempty"`
	Default *Scalar  `json:"default,omitempty" yaml:"default,omitempty"`
}

// Scalar is a default value written as any YAML or JSON scalar. It keeps
// the literal text so the question's coercion decides what it means.
type Scalar string

// UnmarshalJSON accepts any JSON scalar.
func (s *Scalar) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var text string
		if err := json.Unmarshal(trimmed, &text); err != nil {
			return err
		}
		*s = Scalar(text)
		return nil
	}
	switch {
	case bytes.Equal(trimmed, []byte("true")), bytes.Equal(trimmed, []byte("false")):
		*s = Scalar(trimmed)
		return nil
	case len(trimmed) > 0 && json.Valid(trimmed) && trimmed[0] != '{' && trimmed[0] != '[' && trimmed[0] != 'n':
		*s = Scalar(trimmed)
		return nil
	}
	return fmt.Errorf("default must be a scalar")
}

func (s *Scalar) raw() *string {
	if s == nil {
		return nil
	}
	text := string(*s)
	return &text
}
