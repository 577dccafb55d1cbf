package question

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"promptly/internal/ask"
)

// Report is the serializable record of one questionnaire session.
type Report struct {
	Session     string        `json:"session" yaml:"session"`
	CompletedAt time.Time     `json:"completed_at" yaml:"completed_at"`
	Answers     []ReportEntry `json:"answers" yaml:"answers"`
}

// ReportEntry is one answered question.
type ReportEntry struct {
	ID    string `json:"id" yaml:"id"`
	Type  string `json:"type" yaml:"type"`
	Value any    `json:"value" yaml:"value"`
}

// NewReport builds a report with a fresh session id.
func NewReport(results []Result, now time.Time) Report {
	report := Report{
		Session:     uuid.NewString(),
		CompletedAt: now.UTC(),
		Answers:     make([]ReportEntry, 0, len(results)),
	}
	for _, result := range results {
		report.Answers = append(report.Answers, ReportEntry{
			ID:    result.ID,
			Type:  result.Answer.Kind.String(),
			Value: PlainValue(result.Answer.Value),
		})
	}
	return report
}

// Encode writes the report as yaml or json.
func (r Report) Encode(w io.Writer, format string) error {
	switch format {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(r); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case "yaml", "":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(r); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return encoder.Close()
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

// PlainValue converts an answer value to types yaml and json render cleanly.
func PlainValue(value any) any {
	switch v := value.(type) {
	case ask.Symbol:
		return string(v)
	case map[ask.Symbol]string:
		out := make(map[string]string, len(v))
		for key, val := range v {
			out[string(key)] = val
		}
		return out
	case ask.Pairs:
		out := make([]map[string]string, 0, len(v))
		for _, pair := range v {
			out = append(out, map[string]string{string(pair.Key): pair.Label})
		}
		return out
	default:
		return v
	}
}
