package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/hangman/internal/config"
	"github.com/vovakirdan/hangman/internal/core"
	"github.com/vovakirdan/hangman/internal/game"
	"github.com/vovakirdan/hangman/internal/platform/console"
	"github.com/vovakirdan/hangman/internal/words"
)

var (
	flagWords      string
	flagShift      int
	flagMaxFails   int
	flagDifficulty string
	flagNoColor    bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game with a word picked at random from the word list.

Type one letter and press Enter for each guess. Only the first character
of a line is used; repeated letters and non-letters cost nothing.

Difficulty options:
  easy   - 8 wrong guesses allowed
  normal - 6 wrong guesses allowed
  hard   - 4 wrong guesses allowed

Examples:
  hangman play
  hangman play --difficulty easy
  hangman play --words ./animals.txt --shift 5
  hangman play --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagWords, "words", "", "Path to the word list (default from config: words.txt)")
	playCmd.Flags().IntVar(&flagShift, "shift", 0, "Cipher shift of the word list (default from config: 3)")
	playCmd.Flags().IntVar(&flagMaxFails, "max-fails", 0, "Wrong guesses allowed (default from config: 6)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
}

func runPlay(cmd *cobra.Command, _ []string) {
	cfg, logger, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	// Flags override the config file
	if err := config.ApplyPreset(&cfg, config.DifficultyPreset(flagDifficulty)); err != nil {
		fail("%v", err)
	}
	if flagWords != "" {
		cfg.Words.Path = flagWords
	}
	if cmd.Flags().Changed("shift") {
		cfg.Words.Shift = flagShift
	}
	if cmd.Flags().Changed("max-fails") {
		cfg.Game.MaxFails = flagMaxFails
	}
	if err := cfg.Validate(); err != nil {
		fail("%v", err)
	}

	list, err := words.Load(cfg.Words.Path, cfg.Words.Shift)
	if err != nil {
		fail("%v", err)
	}
	logger.Debug("word list loaded", "path", cfg.Words.Path, "words", len(list))

	// Get terminal size and color support
	rt := core.DefaultConfig()
	rt.Seed = flagSeed
	fd := int(os.Stdout.Fd())
	if w, _, termErr := term.GetSize(fd); termErr == nil {
		rt.ScreenW = w
	}
	rt.Color = cfg.UI.Color && !flagNoColor && term.IsTerminal(fd)

	seed := rt.ResolveSeed()
	logger.Debug("random source seeded", "seed", seed)

	secret, err := words.Pick(list, core.NewRand(seed))
	if err != nil {
		fail("%v", err)
	}

	engine := game.New(secret, cfg.Game.MaxFails, game.WithPlaceholder(cfg.Game.PlaceholderRune()))
	renderer := console.NewRenderer(os.Stdout, rt.ScreenW, rt.Color)
	session := console.NewSession(engine, renderer, os.Stdin, os.Stdout, console.WithLogger(logger))

	if _, err := session.Run(); err != nil {
		fail("%v", err)
	}
}
