package ask

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// LineReader yields one line of input per call, without its line ending.
// It returns io.EOF once the input is exhausted.
type LineReader interface {
	ReadLine() (string, error)
}

// Tone classifies an output line so sinks can style it.
type Tone int

const (
	TonePrompt Tone = iota
	ToneChoice
	ToneSelected
	ToneNotice
	ToneError
)

// Line is one line of output.
type Line struct {
	Tone Tone
	Text string
}

// Sink receives output one line at a time.
type Sink interface {
	Say(line Line) error
}

// Reader adapts an io.Reader to LineReader.
type Reader struct {
	reader *bufio.Reader
}

// NewReader wraps r in a line reader.
func NewReader(r io.Reader) *Reader {
	return &Reader{reader: bufio.NewReader(r)}
}

// ReadLine reads one line, trimming line endings. A final line without a
// newline is returned before io.EOF.
func (r *Reader) ReadLine() (string, error) {
	line, err := r.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// PlainSink writes lines to an io.Writer without styling.
type PlainSink struct {
	w io.Writer
}

// NewPlainSink returns a sink writing unstyled lines to w.
func NewPlainSink(w io.Writer) *PlainSink {
	return &PlainSink{w: w}
}

// Say writes line followed by a newline.
func (s *PlainSink) Say(line Line) error {
	_, err := fmt.Fprintln(s.w, line.Text)
	return err
}

// discardSink drops every line.
type discardSink struct{}

func (discardSink) Say(Line) error { return nil }
