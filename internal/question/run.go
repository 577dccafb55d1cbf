package question

import (
	"context"
	"fmt"

	"promptly/internal/ask"
)

// Result pairs a questionnaire entry with its answer.
type Result struct {
	ID     string
	Prompt string
	Answer ask.Answer
}

// Asker answers one question. *ask.Engine satisfies it.
type Asker interface {
	Ask(ctx context.Context, q ask.Question, in ask.LineReader, out ask.Sink) (ask.Answer, error)
}

// Run asks every question of doc in order against one input and output.
// It stops at the first error; answers collected so far are discarded.
func Run(ctx context.Context, asker Asker, doc Questionnaire, in ask.LineReader, out ask.Sink) ([]Result, error) {
	results := make([]Result, 0, len(doc.Questions))
	for _, entry := range doc.Questions {
		q, err := entry.Build()
		if err != nil {
			return nil, fmt.Errorf("question %s: %w", entry.ID, err)
		}
		answer, err := asker.Ask(ctx, q, in, out)
		if err != nil {
			return nil, fmt.Errorf("question %s: %w", entry.ID, err)
		}
		results = append(results, Result{ID: entry.ID, Prompt: q.Text(), Answer: answer})
	}
	return results, nil
}
