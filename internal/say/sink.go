// Package say renders ask output lines to a terminal, styling each line by
// its tone when color is enabled.
package say

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"promptly/internal/ask"
)

// Sink writes ask lines to w.
type Sink struct {
	w        io.Writer
	noColor  bool
	renderer *lipgloss.Renderer
}

// NewSink returns a sink writing to w, styled when color is true.
func NewSink(w io.Writer, color bool) *Sink {
	renderer := lipgloss.NewRenderer(w)
	if color {
		renderer.SetColorProfile(termenv.ANSI256)
	} else {
		renderer.SetColorProfile(termenv.Ascii)
	}
	return &Sink{w: w, noColor: !color, renderer: renderer}
}

// Say writes one styled line.
func (s *Sink) Say(line ask.Line) error {
	_, err := fmt.Fprintln(s.w, s.stylize(line))
	return err
}

// stylize applies optional tone styling.
func (s *Sink) stylize(line ask.Line) string {
	text := decorate(line)
	if s.noColor {
		return text
	}
	return toneStyle(s.renderer, line.Tone).Render(text)
}

// decorate adds the plain-text markers that survive without color.
func decorate(line ask.Line) string {
	switch line.Tone {
	case ask.TonePrompt:
		return "? " + line.Text
	case ask.ToneChoice, ask.ToneSelected:
		return "  " + line.Text
	case ask.ToneError:
		return "! " + line.Text
	default:
		return line.Text
	}
}

// toneStyle selects a style for a given tone.
func toneStyle(renderer *lipgloss.Renderer, tone ask.Tone) lipgloss.Style {
	style := renderer.NewStyle()
	switch tone {
	case ask.TonePrompt:
		return style.Foreground(lipgloss.Color("33")).Bold(true)
	case ask.ToneChoice:
		return style.Foreground(lipgloss.Color("246"))
	case ask.ToneSelected:
		return style.Foreground(lipgloss.Color("42"))
	case ask.ToneNotice:
		return style.Foreground(lipgloss.Color("220"))
	case ask.ToneError:
		return style.Foreground(lipgloss.Color("196"))
	default:
		return style.Foreground(lipgloss.Color("244"))
	}
}
