package game

import (
	"errors"
	"testing"
)

// submitAll feeds letters in order and fails the test on any rejection.
func submitAll(t *testing.T, e *Engine, letters string) {
	t.Helper()
	for _, r := range letters {
		if _, err := e.Submit(r); err != nil {
			t.Fatalf("Submit(%q) failed: %v", r, err)
		}
	}
}

func TestNewMasksLetters(t *testing.T) {
	e := New("tea-party", 0)

	if got := e.Revealed(); got != "___-_____" {
		t.Errorf("Revealed() = %q, want %q", got, "___-_____")
	}
	if e.State() != StatePlaying {
		t.Errorf("State() = %v, want playing", e.State())
	}
	if e.MaxFails() != DefaultMaxFails {
		t.Errorf("MaxFails() = %d, want %d", e.MaxFails(), DefaultMaxFails)
	}
	if e.Attempts() != 0 || e.Fails() != 0 {
		t.Errorf("counters not zero: attempts=%d fails=%d", e.Attempts(), e.Fails())
	}
}

func TestWinScenario(t *testing.T) {
	e := New("cat", 6)

	steps := []struct {
		letter   rune
		revealed string
		state    State
	}{
		{'a', "_a_", StatePlaying},
		{'c', "ca_", StatePlaying},
		{'t', "cat", StateWon},
	}

	for _, step := range steps {
		res, err := e.Submit(step.letter)
		if err != nil {
			t.Fatalf("Submit(%q) failed: %v", step.letter, err)
		}
		if !res.Accepted || !res.Matched {
			t.Errorf("Submit(%q) accepted=%v matched=%v, want both true", step.letter, res.Accepted, res.Matched)
		}
		if got := e.Revealed(); got != step.revealed {
			t.Errorf("after %q: Revealed() = %q, want %q", step.letter, got, step.revealed)
		}
		if res.State != step.state {
			t.Errorf("after %q: State = %v, want %v", step.letter, res.State, step.state)
		}
		if res.Fails != 0 {
			t.Errorf("after %q: Fails = %d, want 0", step.letter, res.Fails)
		}
	}

	if e.Attempts() != 3 {
		t.Errorf("Attempts() = %d, want 3", e.Attempts())
	}
	if !e.Done() {
		t.Error("Done() should be true after win")
	}
}

func TestLossScenario(t *testing.T) {
	e := New("dog", 6)

	for i, r := range "xyzqwe" {
		res, err := e.Submit(r)
		if err != nil {
			t.Fatalf("Submit(%q) failed: %v", r, err)
		}
		if res.Matched {
			t.Errorf("Submit(%q) should not match", r)
		}
		if res.Fails != i+1 {
			t.Errorf("after %q: Fails = %d, want %d", r, res.Fails, i+1)
		}
		wantState := StatePlaying
		if i == 5 {
			wantState = StateLost
		}
		if res.State != wantState {
			t.Errorf("after %q: State = %v, want %v", r, res.State, wantState)
		}
	}

	if e.Fails() != 6 {
		t.Errorf("Fails() = %d, want 6", e.Fails())
	}
	if e.Revealed() != "___" {
		t.Errorf("Revealed() = %q, want %q", e.Revealed(), "___")
	}
	if e.Remaining() != 0 {
		t.Errorf("Remaining() = %d, want 0", e.Remaining())
	}
}

func TestMixedScenario(t *testing.T) {
	e := New("go", 6)

	if _, err := e.Submit('g'); err != nil {
		t.Fatalf("Submit('g') failed: %v", err)
	}

	res, err := e.Submit('g')
	if !errors.Is(err, ErrAlreadyGuessed) {
		t.Fatalf("second Submit('g') error = %v, want ErrAlreadyGuessed", err)
	}
	if res.Accepted {
		t.Error("duplicate submission should not be accepted")
	}
	if e.Attempts() != 1 || e.Fails() != 0 {
		t.Errorf("duplicate changed counters: attempts=%d fails=%d", e.Attempts(), e.Fails())
	}

	res, err = e.Submit('z')
	if err != nil {
		t.Fatalf("Submit('z') failed: %v", err)
	}
	if res.Fails != 1 || res.Attempts != 2 {
		t.Errorf("after 'z': fails=%d attempts=%d, want 1 and 2", res.Fails, res.Attempts)
	}

	res, err = e.Submit('o')
	if err != nil {
		t.Fatalf("Submit('o') failed: %v", err)
	}
	if e.Revealed() != "go" || res.State != StateWon {
		t.Errorf("after 'o': revealed=%q state=%v, want \"go\" won", e.Revealed(), res.State)
	}
}

func TestInvalidInputNeverMutates(t *testing.T) {
	e := New("dog", 6)
	submitAll(t, e, "dx")
	before := e.Snapshot()

	for _, r := range "1 9!?-_.\t" {
		res, err := e.Submit(r)
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("Submit(%q) error = %v, want ErrInvalidInput", r, err)
		}
		if res.Accepted {
			t.Errorf("Submit(%q) should be rejected", r)
		}
	}

	after := e.Snapshot()
	if after.Attempts != before.Attempts || after.Fails != before.Fails || after.Revealed != before.Revealed {
		t.Errorf("invalid input changed state: before %+v after %+v", before, after)
	}
	if len(after.Guessed) != len(before.Guessed) {
		t.Errorf("invalid input recorded a letter: %q", string(after.Guessed))
	}
}

func TestDuplicateOfFailedLetter(t *testing.T) {
	e := New("dog", 6)
	submitAll(t, e, "x")

	_, err := e.Submit('X')
	if !errors.Is(err, ErrAlreadyGuessed) {
		t.Fatalf("Submit('X') error = %v, want ErrAlreadyGuessed", err)
	}
	if e.Fails() != 1 || e.Attempts() != 1 {
		t.Errorf("duplicate fail was charged: fails=%d attempts=%d", e.Fails(), e.Attempts())
	}
}

func TestCaseInsensitiveMatchPreservesCase(t *testing.T) {
	e := New("Moscow", 6)

	res, err := e.Submit('M')
	if err != nil {
		t.Fatalf("Submit('M') failed: %v", err)
	}
	if res.Letter != 'm' {
		t.Errorf("Letter = %q, want 'm'", res.Letter)
	}
	if e.Revealed() != "M_____" {
		t.Errorf("Revealed() = %q, want %q", e.Revealed(), "M_____")
	}

	submitAll(t, e, "oscw")
	if e.State() != StateWon {
		t.Errorf("State() = %v, want won", e.State())
	}
	if e.Revealed() != "Moscow" {
		t.Errorf("Revealed() = %q, want %q", e.Revealed(), "Moscow")
	}
}

func TestRepeatedLetterRevealsAllPositions(t *testing.T) {
	e := New("banana", 6)

	res, err := e.Submit('a')
	if err != nil {
		t.Fatalf("Submit('a') failed: %v", err)
	}
	want := []int{1, 3, 5}
	if len(res.Positions) != len(want) {
		t.Fatalf("Positions = %v, want %v", res.Positions, want)
	}
	for i := range want {
		if res.Positions[i] != want[i] {
			t.Errorf("Positions = %v, want %v", res.Positions, want)
			break
		}
	}
	if e.Revealed() != "_a_a_a" {
		t.Errorf("Revealed() = %q, want %q", e.Revealed(), "_a_a_a")
	}
}

func TestHyphenNeverGuessable(t *testing.T) {
	e := New("x-ray", 6)

	if _, err := e.Submit('-'); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Submit('-') error = %v, want ErrInvalidInput", err)
	}
	submitAll(t, e, "xray")
	if e.State() != StateWon {
		t.Errorf("State() = %v, want won", e.State())
	}
	if e.Fails() != 0 {
		t.Errorf("Fails() = %d, want 0", e.Fails())
	}
}

func TestNonASCIILetters(t *testing.T) {
	e := New("Кот", 6)

	submitAll(t, e, "кот")
	if e.State() != StateWon {
		t.Errorf("State() = %v, want won", e.State())
	}
	if e.Revealed() != "Кот" {
		t.Errorf("Revealed() = %q, want %q", e.Revealed(), "Кот")
	}
}

func TestSubmitAfterGameOver(t *testing.T) {
	e := New("a", 6)
	submitAll(t, e, "a")

	res, err := e.Submit('b')
	if !errors.Is(err, ErrGameOver) {
		t.Fatalf("Submit after win error = %v, want ErrGameOver", err)
	}
	if res.Accepted || e.Attempts() != 1 {
		t.Errorf("terminal state accepted a guess: attempts=%d", e.Attempts())
	}
}

func TestAttemptsInvariant(t *testing.T) {
	e := New("hangman", 6)

	matched := 0
	for _, r := range "eaa1zngqhxm" {
		res, err := e.Submit(r)
		if err == nil && res.Matched {
			matched++
		}
		if e.Attempts() != matched+e.Fails() {
			t.Fatalf("after %q: attempts=%d matched=%d fails=%d", r, e.Attempts(), matched, e.Fails())
		}
		if e.Done() {
			break
		}
	}
	if e.State() != StateWon {
		t.Errorf("State() = %v, want won", e.State())
	}
}

func TestCustomMaxFails(t *testing.T) {
	e := New("dog", 2)
	submitAll(t, e, "xy")

	if e.State() != StateLost {
		t.Errorf("State() = %v, want lost", e.State())
	}
}

func TestSecretWithoutLettersStartsWon(t *testing.T) {
	e := New("--", 6)
	if e.State() != StateWon {
		t.Errorf("State() = %v, want won", e.State())
	}
}

func TestWithPlaceholder(t *testing.T) {
	e := New("cat", 6, WithPlaceholder('*'))
	if e.Revealed() != "***" {
		t.Errorf("Revealed() = %q, want %q", e.Revealed(), "***")
	}
}

func TestSubmitInput(t *testing.T) {
	e := New("cat", 6)

	tests := []struct {
		line    string
		wantErr error
	}{
		{line: "", wantErr: ErrInvalidInput},
		{line: "   \t", wantErr: ErrInvalidInput},
		{line: "7", wantErr: ErrInvalidInput},
		{line: "  C  ", wantErr: nil},
		{line: "cx", wantErr: ErrAlreadyGuessed},
		{line: "apple", wantErr: nil},
	}

	for _, tt := range tests {
		_, err := e.SubmitInput(tt.line)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("SubmitInput(%q) error = %v, want %v", tt.line, err, tt.wantErr)
		}
	}
	if e.Revealed() != "ca_" {
		t.Errorf("Revealed() = %q, want %q", e.Revealed(), "ca_")
	}
}

func TestGuessedPreservesOrderAndIsCopy(t *testing.T) {
	e := New("cat", 6)
	submitAll(t, e, "tzA")

	got := e.Guessed()
	if string(got) != "tza" {
		t.Errorf("Guessed() = %q, want %q", string(got), "tza")
	}
	got[0] = 'q'
	if string(e.Guessed()) != "tza" {
		t.Error("Guessed() exposed internal storage")
	}
}

func TestStateString(t *testing.T) {
	tests := map[State]string{
		StatePlaying: "playing",
		StateWon:     "won",
		StateLost:    "lost",
		State(42):    "unknown",
	}
	for s, want := range tests {
		if s.String() != want {
			t.Errorf("State(%d).String() = %q, want %q", int(s), s.String(), want)
		}
	}
}

func TestLetterPlaceholderIgnored(t *testing.T) {
	e := New("cat", 6, WithPlaceholder('c'))

	if e.Revealed() != "___" {
		t.Fatalf("Revealed() = %q, want %q", e.Revealed(), "___")
	}
	submitAll(t, e, "at")
	if e.State() != StatePlaying {
		t.Errorf("State() = %v after guessing a and t, want playing", e.State())
	}
	if e.Revealed() != "_at" {
		t.Errorf("Revealed() = %q, want %q", e.Revealed(), "_at")
	}

	single := New("a", 6, WithPlaceholder('a'))
	if single.State() != StatePlaying {
		t.Errorf("State() = %v for unguessed secret, want playing", single.State())
	}
}

func TestSnapshotStageFollowsFails(t *testing.T) {
	e := New("dog", 6)

	for i, r := range "xyz" {
		if _, err := e.Submit(r); err != nil {
			t.Fatalf("Submit(%q) failed: %v", r, err)
		}
		snap := e.Snapshot()
		if snap.Stage != i+1 || snap.Stage != e.Stage() {
			t.Errorf("after %q: Snapshot().Stage = %d, Stage() = %d, want %d", r, snap.Stage, e.Stage(), i+1)
		}
	}
	submitAll(t, e, "d")
	if e.Snapshot().Stage != 3 {
		t.Errorf("a match changed the stage: %d", e.Snapshot().Stage)
	}
}
