package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hangman/internal/game"
)

// maxInputLine bounds one line of player input.
const maxInputLine = 1 << 20

// ErrInputClosed is returned when input ends before the game does.
var ErrInputClosed = errors.New("console: input closed before the game ended")

// Stats is the end-of-session report.
type Stats struct {
	Secret   string
	State    game.State
	Elapsed  time.Duration
	Attempts int
	Fails    int
	Guessed  []rune
}

// Session runs one game over a line-oriented console. Everything happens
// on the caller's goroutine: render, prompt, block on the next line, apply.
type Session struct {
	engine   *game.Engine
	renderer *Renderer
	in       *bufio.Scanner
	out      io.Writer
	logger   *log.Logger
	now      func() time.Time
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithLogger sets the diagnostic logger. The default discards everything.
func WithLogger(l *log.Logger) SessionOption {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock replaces time.Now, for reproducible elapsed times.
func WithClock(now func() time.Time) SessionOption {
	return func(s *Session) {
		if now != nil {
			s.now = now
		}
	}
}

// NewSession creates a session for engine reading from in and writing to out.
func NewSession(engine *game.Engine, renderer *Renderer, in io.Reader, out io.Writer, opts ...SessionOption) *Session {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 4096), maxInputLine)

	s := &Session{
		engine:   engine,
		renderer: renderer,
		in:       scanner,
		out:      out,
		logger:   log.New(io.Discard),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run plays until the engine reaches a terminal state. It returns
// ErrInputClosed if input runs out first; the partial stats are still
// returned.
func (s *Session) Run() (Stats, error) {
	start := s.now()

	fmt.Fprintln(s.out, s.renderer.Title())

	for !s.engine.Done() {
		fmt.Fprintln(s.out, s.renderer.Board(s.engine.Snapshot()))
		fmt.Fprint(s.out, s.renderer.Prompt())

		if !s.in.Scan() {
			fmt.Fprintln(s.out)
			stats := s.stats(s.now().Sub(start))
			if err := s.in.Err(); err != nil {
				return stats, fmt.Errorf("%w: %w", ErrInputClosed, err)
			}
			return stats, ErrInputClosed
		}

		res, err := s.engine.SubmitInput(s.in.Text())
		if err != nil {
			s.logger.Debug("submission rejected", "input", s.in.Text(), "error", err)
		} else {
			s.logger.Debug("letter accepted",
				"letter", string(res.Letter),
				"matched", res.Matched,
				"attempts", res.Attempts,
				"fails", res.Fails,
			)
		}
		fmt.Fprintln(s.out, s.renderer.Message(res, err))
	}

	stats := s.stats(s.now().Sub(start))

	fmt.Fprintln(s.out, s.renderer.Board(s.engine.Snapshot()))
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, s.renderer.Summary(s.engine.Snapshot(), stats.Elapsed))

	s.logger.Info("game finished",
		"result", stats.State,
		"attempts", stats.Attempts,
		"fails", stats.Fails,
		"elapsed", stats.Elapsed.Round(time.Millisecond),
	)
	return stats, nil
}

func (s *Session) stats(elapsed time.Duration) Stats {
	return Stats{
		Secret:   s.engine.Secret(),
		State:    s.engine.State(),
		Elapsed:  elapsed,
		Attempts: s.engine.Attempts(),
		Fails:    s.engine.Fails(),
		Guessed:  s.engine.Guessed(),
	}
}
