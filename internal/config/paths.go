package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Questionnaire path constants used by the CLI.
const (
	QuestionsDirName  = ".promptly"
	QuestionsFileName = "questions.yml"
)

// QuestionsDir returns the .promptly directory under root.
func QuestionsDir(root string) string {
	return filepath.Join(root, QuestionsDirName)
}

// QuestionsPath returns the default questionnaire path under root.
func QuestionsPath(root string) string {
	return filepath.Join(QuestionsDir(root), QuestionsFileName)
}

// FindQuestionsPath searches upward from a directory for a questionnaire.
func FindQuestionsPath(startDir string) (string, error) {
	dir := strings.TrimSpace(startDir)
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		dir = wd
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve start directory: %w", err)
	}
	dir = abs

	for {
		questionsDir := QuestionsDir(dir)
		questionsPath := QuestionsPath(dir)
		info, err := os.Stat(questionsPath)
		if err == nil {
			if info.IsDir() {
				return "", fmt.Errorf("questionnaire path %q is a directory", questionsPath)
			}
			return questionsPath, nil
		}
		if !os.IsNotExist(err) {
			return "", fmt.Errorf("stat questionnaire path %q: %w", questionsPath, err)
		}
		if dirInfo, dirErr := os.Stat(questionsDir); dirErr == nil && dirInfo.IsDir() {
			return "", fmt.Errorf("found %q but %s is missing", questionsDir, QuestionsFileName)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no %s found in %s or parent directories", filepath.Join(QuestionsDirName, QuestionsFileName), dir)
		}
		dir = parent
	}
}
