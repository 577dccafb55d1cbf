package say

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ColorDecision captures whether output should be styled.
type ColorDecision struct {
	Color   bool
	Warning string
}

// isTerminal reports whether a writer is a TTY.
var isTerminal = defaultIsTerminal

// ResolveColor determines whether to style output written to stdout.
// noColor mirrors the NO_COLOR convention and wins over auto detection.
func ResolveColor(mode string, noColor bool, stdout io.Writer) (ColorDecision, error) {
	normalized := strings.ToLower(strings.TrimSpace(mode))
	if normalized == "" {
		normalized = "auto"
	}
	switch normalized {
	case "auto":
		if noColor {
			return ColorDecision{Color: false}, nil
		}
		return ColorDecision{Color: isTerminal(stdout)}, nil
	case "always":
		if isTerminal(stdout) {
			return ColorDecision{Color: true}, nil
		}
		return ColorDecision{
			Color:   true,
			Warning: "Color forced but stdout is not a TTY; escape codes will be written as-is.",
		}, nil
	case "never":
		return ColorDecision{Color: false}, nil
	default:
		return ColorDecision{}, fmt.Errorf("invalid color mode %q (expected auto|always|never)", mode)
	}
}

// defaultIsTerminal inspects stdout for TTY support.
func defaultIsTerminal(stdout io.Writer) bool {
	if stdout == nil {
		return false
	}
	if file, ok := stdout.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	if fder, ok := stdout.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(fder.Fd()))
	}
	return false
}
