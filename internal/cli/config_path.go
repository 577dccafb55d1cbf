package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"promptly/internal/config"
)

// resolveQuestionsPath normalizes a questionnaire path or finds it from CWD.
func resolveQuestionsPath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return config.FindQuestionsPath("")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve questionnaire path: %w", err)
	}
	return abs, nil
}
