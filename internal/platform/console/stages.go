package console

// Stages are the gallows drawings, indexed by wrong guesses on the
// standard six-fail scale.
var Stages = [...]string{
	"  _______\n" +
		" |/      |\n" +
		" |\n" +
		" |\n" +
		" |\n" +
		" |\n" +
		"_|___",

	"  _______\n" +
		" |/      |\n" +
		" |      (_)\n" +
		" |\n" +
		" |\n" +
		" |\n" +
		"_|___",

	"  _______\n" +
		" |/      |\n" +
		" |      (_)\n" +
		" |       |\n" +
		" |       |\n" +
		" |\n" +
		"_|___",

	"  _______\n" +
		" |/      |\n" +
		" |      (_)\n" +
		" |      \\|\n" +
		" |       |\n" +
		" |\n" +
		"_|___",

	"  _______\n" +
		" |/      |\n" +
		" |      (_)\n" +
		" |      \\|/\n" +
		" |       |\n" +
		" |\n" +
		"_|___",

	"  _______\n" +
		" |/      |\n" +
		" |      (_)\n" +
		" |      \\|/\n" +
		" |       |\n" +
		" |      /\n" +
		"_|___",

	"  _______\n" +
		" |/      |\n" +
		" |      (_)\n" +
		" |      \\|/\n" +
		" |       |\n" +
		" |      / \\\n" +
		"_|___",
}

// StageIndex maps fails in [0, maxFails] onto the Stages table.
// With maxFails == 6 the mapping is the identity; other limits are scaled
// so the full figure always appears on the losing guess.
func StageIndex(fails, maxFails int) int {
	last := len(Stages) - 1
	if maxFails <= 0 {
		maxFails = last
	}
	if fails <= 0 {
		return 0
	}
	if fails >= maxFails {
		return last
	}
	idx := fails * last / maxFails
	if idx == 0 {
		idx = 1 // any wrong guess shows at least the head
	}
	return idx
}

// StageFor returns the drawing for fails out of maxFails.
func StageFor(fails, maxFails int) string {
	return Stages[StageIndex(fails, maxFails)]
}
