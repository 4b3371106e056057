package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hangman/internal/cipher"
	"github.com/vovakirdan/hangman/internal/words"
)

var flagCodecShift int

var decodeCmd = &cobra.Command{
	Use:   "decode [file]",
	Short: "Print the decoded word list",
	Long: `Decode a ciphered word list and print one word per line.

Useful to check that a word file decodes to what you expect before
playing. Without a file argument the configured word list is used.

Examples:
  hangman decode
  hangman decode words.txt --shift 3`,
	Args: cobra.MaximumNArgs(1),
	Run:  runDecode,
}

var encodeCmd = &cobra.Command{
	Use:   "encode [file]",
	Short: "Cipher a plain word list",
	Long: `Read plain words (one per line) and print them ciphered, ready to be
saved as a word list. Reads standard input when no file is given.
Blank lines are dropped.

Examples:
  hangman encode plain.txt > words.txt
  printf 'cat\ndog\n' | hangman encode`,
	Args: cobra.MaximumNArgs(1),
	Run:  runEncode,
}

func init() {
	decodeCmd.Flags().IntVar(&flagCodecShift, "shift", cipher.DefaultShift, "Cipher shift")
	encodeCmd.Flags().IntVar(&flagCodecShift, "shift", cipher.DefaultShift, "Cipher shift")
}

func runDecode(cmd *cobra.Command, args []string) {
	cfg, logger, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	path := cfg.Words.Path
	if len(args) == 1 {
		path = args[0]
	}
	shift := cfg.Words.Shift
	if cmd.Flags().Changed("shift") {
		shift = flagCodecShift
	}
	if err := cipher.ValidateShift(shift); err != nil {
		fail("%v", err)
	}

	list, err := words.Load(path, shift)
	if err != nil {
		fail("%v", err)
	}
	logger.Debug("word list decoded", "path", path, "words", len(list))

	for _, w := range list {
		fmt.Println(w)
	}
}

func runEncode(_ *cobra.Command, args []string) {
	_, logger, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}
	if err := cipher.ValidateShift(flagCodecShift); err != nil {
		fail("%v", err)
	}

	var in io.Reader = os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			fail("cannot open %s: %v", args[0], err)
		}
		defer f.Close()
		in = f
	}

	// Shift 0 reads the lines as they are
	list, err := words.Parse(in, 0)
	if err != nil {
		fail("%v", err)
	}
	if err := words.Encode(os.Stdout, list, flagCodecShift); err != nil {
		fail("%v", err)
	}
	logger.Debug("word list encoded", "words", len(list), "shift", flagCodecShift)
}
