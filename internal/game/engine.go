package game

import (
	"strings"
	"unicode"
)

// Engine holds the state of a single game. It is not safe for concurrent
// use; one game loop owns it for its whole life.
type Engine struct {
	secret      []rune
	revealed    []rune
	guessed     []rune
	guessedSet  map[rune]struct{}
	attempts    int
	fails       int
	maxFails    int
	placeholder rune
	state       State
}

// Option configures an Engine.
type Option func(*Engine)

// WithPlaceholder sets the rune used for hidden letters.
// Zero and letter runes are ignored: a letter placeholder would read as
// already revealed wherever the secret holds that letter.
func WithPlaceholder(r rune) Option {
	return func(e *Engine) {
		if r != 0 && !unicode.IsLetter(r) {
			e.placeholder = r
		}
	}
}

// New starts a game for secret. A non-positive maxFails uses DefaultMaxFails.
// Letters are masked; any other rune (hyphen, space, digit) is shown as is.
func New(secret string, maxFails int, opts ...Option) *Engine {
	if maxFails <= 0 {
		maxFails = DefaultMaxFails
	}

	e := &Engine{
		secret:      []rune(secret),
		guessedSet:  make(map[rune]struct{}),
		maxFails:    maxFails,
		placeholder: DefaultPlaceholder,
		state:       StatePlaying,
	}
	for _, opt := range opts {
		opt(e)
	}

	e.revealed = make([]rune, len(e.secret))
	for i, r := range e.secret {
		if unicode.IsLetter(r) {
			e.revealed[i] = e.placeholder
		} else {
			e.revealed[i] = r
		}
	}

	// A secret without letters has nothing left to guess.
	if e.complete() {
		e.state = StateWon
	}
	return e
}

// Submit applies one guessed letter.
// Rejected submissions return an error and leave every counter unchanged.
func (e *Engine) Submit(letter rune) (Result, error) {
	letter = unicode.ToLower(letter)

	if e.state.Terminal() {
		return e.rejected(letter), ErrGameOver
	}
	if !unicode.IsLetter(letter) {
		return e.rejected(letter), ErrInvalidInput
	}
	if _, dup := e.guessedSet[letter]; dup {
		return e.rejected(letter), ErrAlreadyGuessed
	}

	e.guessedSet[letter] = struct{}{}
	e.guessed = append(e.guessed, letter)
	e.attempts++

	var positions []int
	for i, r := range e.secret {
		if unicode.ToLower(r) == letter {
			e.revealed[i] = r
			positions = append(positions, i)
		}
	}

	matched := len(positions) > 0
	if !matched {
		e.fails++
	}

	switch {
	case e.complete():
		e.state = StateWon
	case e.fails >= e.maxFails:
		e.state = StateLost
	}

	return Result{
		Letter:    letter,
		Accepted:  true,
		Matched:   matched,
		Positions: positions,
		Attempts:  e.attempts,
		Fails:     e.fails,
		State:     e.state,
	}, nil
}

// SubmitInput submits the first non-space rune of a console line.
// A blank line is invalid input.
func (e *Engine) SubmitInput(line string) (Result, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		if e.state.Terminal() {
			return e.rejected(0), ErrGameOver
		}
		return e.rejected(0), ErrInvalidInput
	}
	return e.Submit([]rune(trimmed)[0])
}

func (e *Engine) rejected(letter rune) Result {
	return Result{
		Letter:   letter,
		Attempts: e.attempts,
		Fails:    e.fails,
		State:    e.state,
	}
}

// complete reports whether revealed equals secret.
func (e *Engine) complete() bool {
	for i := range e.secret {
		if e.revealed[i] != e.secret[i] {
			return false
		}
	}
	return true
}

// Secret returns the word being guessed.
func (e *Engine) Secret() string { return string(e.secret) }

// Revealed returns the current pattern, same rune length as the secret.
func (e *Engine) Revealed() string { return string(e.revealed) }

// Guessed returns accepted letters in submission order.
func (e *Engine) Guessed() []rune {
	out := make([]rune, len(e.guessed))
	copy(out, e.guessed)
	return out
}

// Attempts is the number of accepted submissions.
func (e *Engine) Attempts() int { return e.attempts }

// Fails is the number of accepted submissions that matched nothing.
func (e *Engine) Fails() int { return e.fails }

// MaxFails is the fail count at which the game is lost.
func (e *Engine) MaxFails() int { return e.maxFails }

// Remaining is the number of wrong guesses left before losing.
func (e *Engine) Remaining() int { return e.maxFails - e.fails }

// State returns the current lifecycle state.
func (e *Engine) State() State { return e.state }

// Done reports whether the game has reached a terminal state.
func (e *Engine) Done() bool { return e.state.Terminal() }

// Stage is the drawing index for renderers, in [0, MaxFails].
func (e *Engine) Stage() int { return e.fails }

// Snapshot returns a copy of the engine state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Secret:   e.Secret(),
		Revealed: e.Revealed(),
		Guessed:  e.Guessed(),
		Attempts: e.attempts,
		Fails:    e.fails,
		MaxFails: e.maxFails,
		Stage:    e.Stage(),
		State:    e.state,
	}
}
