package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestAskCommandSymbol(t *testing.T) {
	withInput(t, "Jane Doe")

	var out, err bytes.Buffer
	code := Run([]string{"ask", "What", "is", "your", "name?"}, &out, &err)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (%s)", ExitOK, code, err.String())
	}
	if out.String() != "jane_doe\n" {
		t.Fatalf("expected symbol answer, got %q", out.String())
	}
	if !strings.Contains(err.String(), "? What is your name?") {
		t.Fatalf("expected prompt on stderr, got %q", err.String())
	}
}

func TestAskCommandKeyedChoicesJSON(t *testing.T) {
	withInput(t, "2", "1", "")

	var out, err bytes.Buffer
	code := Run([]string{"ask", "--type", "choices", "--choice", "cat=Cat", "--choice", "dog=Dog", "--format", "json", "Pets?"}, &out, &err)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (%s)", ExitOK, code, err.String())
	}
	if out.String() != `[{"dog":"Dog"},{"cat":"Cat"}]`+"\n" {
		t.Fatalf("unexpected answer: %q", out.String())
	}
}

func TestAskCommandRangeBounds(t *testing.T) {
	withInput(t, "1", "3", "4", "6")

	var out, err bytes.Buffer
	code := Run([]string{"ask", "--type", "range", "--min", "4", "Hours?"}, &out, &err)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (%s)", ExitOK, code, err.String())
	}
	if out.String() != "4..6\n" {
		t.Fatalf("unexpected answer: %q", out.String())
	}
	if !strings.Contains(err.String(), "start again") {
		t.Fatalf("expected range notice, got %q", err.String())
	}
}

func TestAskCommandDefault(t *testing.T) {
	withInput(t, "")

	var out, err bytes.Buffer
	code := Run([]string{"ask", "--type", "integer", "--default", "7", "Count?"}, &out, &err)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (%s)", ExitOK, code, err.String())
	}
	if out.String() != "7\n" {
		t.Fatalf("unexpected answer: %q", out.String())
	}
}

func TestAskCommandInputClosed(t *testing.T) {
	withInput(t, "abc")

	var out, err bytes.Buffer
	code := Run([]string{"ask", "--type", "float", "Ratio?"}, &out, &err)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no answer, got %q", out.String())
	}
	if !strings.Contains(err.String(), "input closed") {
		t.Fatalf("expected input closed message, got %q", err.String())
	}
}

func TestAskCommandRejectsMisconfiguration(t *testing.T) {
	withInput(t)
	cases := [][]string{
		{"ask", "--type", "colour", "Q?"},
		{"ask", "--type", "multiple_choice", "Q?"},
		{"ask", "--type", "array", "--min", "3", "--max", "1", "Q?"},
		{"ask", "--choice", "a", "Q?"},
		{"ask", "--type", "array"},
		{"ask", "--min", "many", "Q?"},
	}
	for _, args := range cases {
		var out, err bytes.Buffer
		if code := Run(args, &out, &err); code != ExitUsage {
			t.Fatalf("%v: expected exit %d, got %d (%s)", args, ExitUsage, code, err.String())
		}
	}
}
