package ask

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// eofFeeds bounds how many empty terminators are fed to a handler after the
// input closes. A hash waiting for a value needs two: the value and the key.
const eofFeeds = 2

// Option customizes an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for loop transitions.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// Engine asks questions against injected line input and output.
type Engine struct {
	logger *slog.Logger
}

// NewEngine builds an Engine. Without options it logs nothing.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

var defaultEngine = NewEngine()

// Ask asks q using a default engine.
func Ask(ctx context.Context, q Question, in LineReader, out Sink) (Answer, error) {
	return defaultEngine.Ask(ctx, q, in, out)
}

// AskFunc asks q using a default engine and delivers the answer to fn.
func AskFunc(ctx context.Context, q Question, in LineReader, out Sink, fn func(Answer) error) error {
	return defaultEngine.AskFunc(ctx, q, in, out, fn)
}

// Ask prompts until q is answered. It returns a *ConfigError before any I/O
// when q is misconfigured, and ErrInputClosed when the input ends before the
// answer is complete. No partial answer is ever returned.
func (e *Engine) Ask(ctx context.Context, q Question, in LineReader, out Sink) (Answer, error) {
	h, err := newHandler(q)
	if err != nil {
		return Answer{}, err
	}
	if in == nil {
		return Answer{}, errors.New("ask: nil input")
	}
	if out == nil {
		out = discardSink{}
	}
	logger := e.logger.With(slog.String("kind", q.kind.String()))
	logger.DebugContext(ctx, "ask started", slog.String("question", q.text))

	closed := 0
	for {
		if err := ctx.Err(); err != nil {
			return Answer{}, err
		}
		line := ""
		if closed == 0 {
			if err := say(out, h.prompt()); err != nil {
				return Answer{}, err
			}
			raw, err := in.ReadLine()
			switch {
			case errors.Is(err, io.EOF):
				closed++
			case err != nil:
				return Answer{}, fmt.Errorf("read input: %w", err)
			default:
				line = raw
			}
		} else {
			closed++
		}
		if closed > eofFeeds {
			logger.DebugContext(ctx, "input closed", slog.String("state", h.state().String()))
			return Answer{}, ErrInputClosed
		}

		before := h.state()
		result := h.feed(line)
		logger.DebugContext(ctx, "line read",
			slog.String("from", before.String()),
			slog.String("to", h.state().String()),
			slog.Bool("eof", closed > 0),
		)
		if err := say(out, result.notices); err != nil {
			return Answer{}, err
		}
		if result.done {
			answer := Answer{Kind: q.kind, Value: h.value()}
			logger.DebugContext(ctx, "ask finished", slog.String("answer", answer.String()))
			return answer, nil
		}
	}
}

// AskFunc asks q and passes the answer to fn instead of returning it.
func (e *Engine) AskFunc(ctx context.Context, q Question, in LineReader, out Sink, fn func(Answer) error) error {
	if fn == nil {
		return errors.New("ask: nil callback")
	}
	answer, err := e.Ask(ctx, q, in, out)
	if err != nil {
		return err
	}
	return fn(answer)
}

func say(out Sink, lines []Line) error {
	for _, line := range lines {
		if err := out.Say(line); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	return nil
}
