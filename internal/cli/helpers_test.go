package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"promptly/internal/config"
)

// withInput replaces prompt input and pins the environment for one test.
func withInput(t *testing.T, lines ...string) {
	t.Helper()
	origInput, origEnv := promptInput, loadEnv
	text := strings.Join(lines, "\n")
	if len(lines) > 0 {
		text += "\n"
	}
	promptInput = strings.NewReader(text)
	loadEnv = func() (config.Env, error) {
		return config.Env{Color: "never", Format: config.FormatYAML}, nil
	}
	t.Cleanup(func() {
		promptInput = origInput
		loadEnv = origEnv
	})
}

func writeQuestionnaire(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("create questionnaire dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write questionnaire: %v", err)
	}
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("get wd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
