package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/hangman/internal/cipher"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// SourceEmbedded names the embedded default in Load's source result.
const SourceEmbedded = "embedded"

// Load loads the hangman configuration.
// Search order: customPath -> ~/.hangman/config.yaml -> ./configs/hangman.yaml -> embedded default.
// It returns the config and where it came from.
func Load(customPath string) (Config, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return Config{}, "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, userCfgPath, nil
			}
		}
	}

	// Try local configs directory
	localPath := filepath.Join("configs", "hangman.yaml")
	if data, err := os.ReadFile(localPath); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, localPath, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultYAML)
	if err != nil {
		return DefaultConfig(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// parse decodes YAML on top of the defaults so omitted keys keep their
// built-in values.
func parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := ApplyPreset(&cfg, cfg.Game.Difficulty); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".hangman", filename)
}

// Validate checks that the config can start a game.
func (c Config) Validate() error {
	if c.Words.Path == "" {
		return fmt.Errorf("%w: words.path is empty", ErrInvalid)
	}
	if err := cipher.ValidateShift(c.Words.Shift); err != nil {
		return fmt.Errorf("%w: words.shift: %w", ErrInvalid, err)
	}
	if c.Game.MaxFails < 1 {
		return fmt.Errorf("%w: game.max_fails must be at least 1, got %d", ErrInvalid, c.Game.MaxFails)
	}
	if utf8.RuneCountInString(c.Game.Placeholder) != 1 {
		return fmt.Errorf("%w: game.placeholder must be a single character, got %q", ErrInvalid, c.Game.Placeholder)
	}
	if unicode.IsLetter(c.Game.PlaceholderRune()) {
		return fmt.Errorf("%w: game.placeholder must not be a letter, got %q", ErrInvalid, c.Game.Placeholder)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level %q (want debug, info, warn or error)", ErrInvalid, c.Log.Level)
	}
	return nil
}
