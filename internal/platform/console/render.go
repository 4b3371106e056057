// Package console is the text-console front end for the hangman engine.
// It renders engine state with lipgloss and runs the synchronous
// prompt/answer loop. The engine never depends on anything here.
package console

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/hangman/internal/game"
)

// minSideBySideWidth is the narrowest terminal that fits gallows and word
// panel next to each other.
const minSideBySideWidth = 48

// Renderer turns engine snapshots into console text.
type Renderer struct {
	width int

	title   lipgloss.Style
	gallows lipgloss.Style
	word    lipgloss.Style
	label   lipgloss.Style
	good    lipgloss.Style
	bad     lipgloss.Style
	warn    lipgloss.Style
}

// NewRenderer creates a renderer writing for out. With color disabled every
// style is plain so output contains no escape sequences.
func NewRenderer(out io.Writer, width int, color bool) *Renderer {
	lr := lipgloss.NewRenderer(out)
	if !color {
		lr.SetColorProfile(termenv.Ascii)
		plain := lr.NewStyle()
		return &Renderer{
			width:   width,
			title:   plain,
			gallows: plain,
			word:    plain,
			label:   plain,
			good:    plain,
			bad:     plain,
			warn:    plain,
		}
	}

	return &Renderer{
		width:   width,
		title:   lr.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		gallows: lr.NewStyle().Foreground(lipgloss.Color("245")),
		word:    lr.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		label:   lr.NewStyle().Foreground(lipgloss.Color("245")),
		good:    lr.NewStyle().Foreground(lipgloss.Color("10")),
		bad:     lr.NewStyle().Foreground(lipgloss.Color("9")),
		warn:    lr.NewStyle().Foreground(lipgloss.Color("11")),
	}
}

// Title returns the banner shown once at the start of a session.
func (r *Renderer) Title() string {
	return r.title.Render("===== Hangman =====")
}

// Board renders the gallows frame next to the word panel.
func (r *Renderer) Board(s game.Snapshot) string {
	frame := r.gallows.Render(StageFor(s.Stage, s.MaxFails))

	panel := strings.Join([]string{
		r.label.Render("Word: ") + r.word.Render(spaced(s.Revealed)),
		r.label.Render("Wrong guesses left: ") + fmt.Sprint(s.MaxFails-s.Fails),
		r.label.Render("Letters: ") + spaced(string(s.Guessed)),
	}, "\n")

	if r.width >= minSideBySideWidth {
		return lipgloss.JoinHorizontal(lipgloss.Top, frame, "    ", "\n\n"+panel)
	}
	return frame + "\n\n" + panel
}

// Prompt asks for the next letter.
func (r *Renderer) Prompt() string {
	return "Enter a letter: "
}

// Message describes the outcome of one submission.
func (r *Renderer) Message(res game.Result, err error) string {
	switch {
	case errors.Is(err, game.ErrInvalidInput):
		return r.warn.Render("Please enter a letter!")
	case errors.Is(err, game.ErrAlreadyGuessed):
		return r.warn.Render(fmt.Sprintf("You already tried %q.", res.Letter))
	case errors.Is(err, game.ErrGameOver):
		return r.warn.Render("The game is over.")
	case err != nil:
		return r.bad.Render(err.Error())
	case res.Matched:
		return r.good.Render(fmt.Sprintf("Yes! %q is in the word.", res.Letter))
	default:
		return r.bad.Render(fmt.Sprintf("No letter %q in the word!", res.Letter))
	}
}

// Summary renders the end-of-game result and statistics.
func (r *Renderer) Summary(s game.Snapshot, elapsed time.Duration) string {
	var result string
	switch s.State {
	case game.StateWon:
		result = r.good.Render("You won! The word: ") + r.word.Render(s.Secret)
	case game.StateLost:
		result = r.bad.Render("You lost. The word was: ") + r.word.Render(s.Secret)
	default:
		result = r.warn.Render("Game not finished. The word was: ") + r.word.Render(s.Secret)
	}

	lines := []string{
		r.title.Render("===== Result ====="),
		result,
		"",
		r.label.Render("Statistics:"),
		fmt.Sprintf("Time: %.1f seconds", elapsed.Seconds()),
		fmt.Sprintf("Attempts: %d", s.Attempts),
		fmt.Sprintf("Fails: %d", s.Fails),
		"Letters: " + spaced(string(s.Guessed)),
	}
	return strings.Join(lines, "\n")
}

// spaced separates runes with single spaces for readability.
func spaced(s string) string {
	runes := []rune(s)
	parts := make([]string, len(runes))
	for i, r := range runes {
		parts[i] = string(r)
	}
	return strings.Join(parts, " ")
}
