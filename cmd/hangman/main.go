// hangman is a terminal word-guessing game.
//
// Usage:
//
//	hangman play             - Play a game with a random word
//	hangman decode [file]    - Print the decoded word list
//	hangman encode [file]    - Cipher a plain word list for storage
//
// Global flags:
//
//	--config <path>     - Use a specific config file
//	--log-level <level> - debug, info, warn or error
//	--seed <value>      - Set RNG seed for a reproducible word choice
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/hangman/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
	flagSeed     int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hangman",
	Short: "Hangman - guess the word one letter at a time",
	Long: `Hangman picks a secret word from an obfuscated word list and lets you
guess it letter by letter. Six wrong guesses and the figure is complete.

Available commands:
  play     - Start a game
  decode   - Show the plaintext of a word list
  encode   - Produce a word list file from plain words

Examples:
  hangman play
  hangman play --words ./my-words.txt --difficulty hard
  hangman decode words.txt
  hangman encode plain.txt > words.txt`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(encodeCmd)
}

// loadConfig resolves the configuration and the logger for a command.
// Flag overrides are applied by the caller before Validate.
func loadConfig() (config.Config, *log.Logger, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return cfg, nil, err
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}

	logger := newLogger(cfg.Log.Level)
	logger.Debug("config loaded", "source", source)
	return cfg, logger, nil
}

// newLogger builds the stderr logger. Unknown levels fall back to warn;
// Validate reports them separately.
func newLogger(level string) *log.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.WarnLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "hangman",
		Level:           lvl,
	})
}

// fail prints an error and exits with status 1.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
