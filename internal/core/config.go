// Package core holds process-level runtime settings shared by the CLI and
// the console session.
package core

import (
	"math/rand"
	"time"
)

// RuntimeConfig contains settings resolved once at process start.
type RuntimeConfig struct {
	ScreenW int   // Terminal width in characters
	Seed    int64 // RNG seed; 0 means seed from the clock
	Color   bool  // Whether styled output is allowed
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		Seed:    0, // 0 means use current time
		Color:   true,
	}
}

// ResolveSeed returns the configured seed, or a clock-based one if unset.
func (c RuntimeConfig) ResolveSeed() int64 {
	if c.Seed == 0 {
		return time.Now().UnixNano()
	}
	return c.Seed
}

// NewRand builds the process random source. It is created once and passed
// to whatever needs randomness.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
