// Package game implements the hangman guess engine: the state machine that
// owns the secret word, the revealed pattern, the guessed letters and the
// fail counter. It has no I/O; renderers read its state through accessors.
package game

import "errors"

// DefaultMaxFails is the number of wrong guesses that ends a game.
const DefaultMaxFails = 6

// DefaultPlaceholder masks letters that have not been revealed yet.
const DefaultPlaceholder = '_'

// State is the engine's position in its lifecycle.
type State int

const (
	StatePlaying State = iota
	StateWon
	StateLost
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether no more guesses are accepted in this state.
func (s State) Terminal() bool {
	return s == StateWon || s == StateLost
}

var (
	// ErrInvalidInput is returned for submissions that are not letters.
	ErrInvalidInput = errors.New("game: input is not a letter")

	// ErrAlreadyGuessed is returned when a letter is submitted twice.
	ErrAlreadyGuessed = errors.New("game: letter already guessed")

	// ErrGameOver is returned for submissions after the game has ended.
	ErrGameOver = errors.New("game: game is over")
)

// Result describes the outcome of one submission.
type Result struct {
	Letter    rune  // Normalized (lowercase) letter, zero if none could be read
	Accepted  bool  // False when the submission was rejected
	Matched   bool  // At least one position was revealed
	Positions []int // Rune indexes revealed by this submission
	Attempts  int
	Fails     int
	State     State
}

// Snapshot captures engine state for rendering and tests.
type Snapshot struct {
	Secret   string
	Revealed string
	Guessed  []rune
	Attempts int
	Fails    int
	MaxFails int
	Stage    int // Drawing index in [0, MaxFails]
	State    State
}
