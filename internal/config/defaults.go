package config

import (
	_ "embed"

	"github.com/vovakirdan/hangman/internal/cipher"
	"github.com/vovakirdan/hangman/internal/words"
)

//go:embed defaults/hangman.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Words: WordsConfig{
			Path:  words.DefaultPath,
			Shift: cipher.DefaultShift,
		},
		Game: GameConfig{
			MaxFails:    6,
			Placeholder: "_",
		},
		UI: UIConfig{
			Color: true,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
