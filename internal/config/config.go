// Package config provides YAML-based configuration loading and difficulty
// presets for the hangman game.
package config

// Config contains all user-tunable settings.
type Config struct {
	Words WordsConfig `yaml:"words"`
	Game  GameConfig  `yaml:"game"`
	UI    UIConfig    `yaml:"ui"`
	Log   LogConfig   `yaml:"log"`
}

// WordsConfig describes where the word list lives and how it is encoded.
type WordsConfig struct {
	Path  string `yaml:"path"`
	Shift int    `yaml:"shift"` // Caesar rotation of the stored file
}

// GameConfig defines the rules of a single game.
type GameConfig struct {
	MaxFails    int              `yaml:"max_fails"`
	Placeholder string           `yaml:"placeholder"` // Single rune for hidden letters
	Difficulty  DifficultyPreset `yaml:"difficulty"`  // Overrides max_fails when set
}

// UIConfig controls console output.
type UIConfig struct {
	Color bool `yaml:"color"`
}

// LogConfig controls diagnostic logging on stderr.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// PlaceholderRune returns the placeholder as a rune, or 0 if unset.
func (g GameConfig) PlaceholderRune() rune {
	for _, r := range g.Placeholder {
		return r
	}
	return 0
}
