package say

import (
	"io"
	"testing"
)

// TestResolveColor verifies color decision logic.
func TestResolveColor(t *testing.T) {
	cases := []struct {
		name      string
		mode      string
		noColor   bool
		isTTY     bool
		wantColor bool
		wantWarn  bool
		wantErr   bool
	}{
		{name: "auto tty", mode: "auto", isTTY: true, wantColor: true},
		{name: "empty is auto", mode: "", isTTY: true, wantColor: true},
		{name: "auto non-tty", mode: "auto", isTTY: false, wantColor: false},
		{name: "no color env", mode: "auto", noColor: true, isTTY: true, wantColor: false},
		{name: "never", mode: "never", isTTY: true, wantColor: false},
		{name: "always tty", mode: "always", isTTY: true, wantColor: true},
		{name: "always non-tty warning", mode: "always", isTTY: false, wantColor: true, wantWarn: true},
		{name: "invalid mode", mode: "rainbow", isTTY: true, wantErr: true},
	}

	original := isTerminal
	t.Cleanup(func() { isTerminal = original })

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			isTerminal = func(_ io.Writer) bool { return tc.isTTY }
			decision, err := ResolveColor(tc.mode, tc.noColor, nil)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if decision.Color != tc.wantColor {
				t.Fatalf("expected color=%v, got %v", tc.wantColor, decision.Color)
			}
			if tc.wantWarn != (decision.Warning != "") {
				t.Fatalf("unexpected warning %q", decision.Warning)
			}
		})
	}
}
