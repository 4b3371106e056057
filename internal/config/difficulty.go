package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// MaxFailsForPreset returns the allowed wrong guesses for a preset.
func MaxFailsForPreset(preset DifficultyPreset) (int, error) {
	switch preset {
	case DifficultyEasy:
		return 8, nil
	case DifficultyNormal:
		return 6, nil
	case DifficultyHard:
		return 4, nil
	default:
		return 0, fmt.Errorf("%w: unknown difficulty %q (want easy, normal or hard)", ErrInvalid, preset)
	}
}

// ApplyPreset sets the difficulty and the matching fail limit.
// An empty preset leaves the config unchanged.
func ApplyPreset(cfg *Config, preset DifficultyPreset) error {
	if preset == "" {
		return nil
	}
	maxFails, err := MaxFailsForPreset(preset)
	if err != nil {
		return err
	}
	cfg.Game.Difficulty = preset
	cfg.Game.MaxFails = maxFails
	return nil
}
