// Package words loads the obfuscated word list and picks secrets from it.
package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"

	"github.com/vovakirdan/hangman/internal/cipher"
)

// DefaultPath is the word file looked up relative to the working directory.
const DefaultPath = "words.txt"

// MaxLineSize bounds a single line of the word file.
const MaxLineSize = 1 << 20

var (
	// ErrLoad wraps any failure to open or read the word file.
	ErrLoad = errors.New("words: cannot load word list")

	// ErrEmptyList means the source was readable but held no words.
	ErrEmptyList = errors.New("words: word list is empty")
)

// List is an ordered, decoded word list. It is not modified after loading.
type List []string

// Load opens the word file at path and decodes every line with shift.
func Load(path string, shift int) (List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	defer f.Close()

	list, err := Parse(f, shift)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return list, nil
}

// Parse reads newline-delimited ciphered words from r.
// Line terminators (including a trailing \r) are stripped and blank lines
// are skipped. Line order is preserved.
func Parse(r io.Reader, shift int) (List, error) {
	var list List

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		word := cipher.Decode(line, shift)
		if strings.TrimSpace(word) == "" {
			continue
		}
		list = append(list, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}

	if len(list) == 0 {
		return nil, ErrEmptyList
	}
	return list, nil
}

// Pick returns a uniformly chosen word from list using rng.
func Pick(list List, rng *rand.Rand) (string, error) {
	if len(list) == 0 {
		return "", ErrEmptyList
	}
	return list[rng.Intn(len(list))], nil
}

// Encode writes list to w, one ciphered word per line.
func Encode(w io.Writer, list List, shift int) error {
	bw := bufio.NewWriter(w)
	for _, word := range list {
		if _, err := bw.WriteString(cipher.Encode(word, shift) + "\n"); err != nil {
			return fmt.Errorf("words: cannot write word list: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("words: cannot write word list: %w", err)
	}
	return nil
}
