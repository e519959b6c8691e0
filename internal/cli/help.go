package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/mgutz/ansi"
)

// Version is overridden at build time with -ldflags "-X .../internal/cli.Version=...".
var Version = "0.1.0-dev"

// WriteHelp writes usage text for the binary invoked as exec.
func WriteHelp(w io.Writer, exec string, color bool) {
	bold, underline := func(s string) string { return s }, func(s string) string { return s }
	if color {
		bold, underline = ansi.ColorFunc("default+b"), ansi.ColorFunc("default+u")
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n    Play wordle in the terminal. See the %s section.\n\nSYNOPSIS\n", exec, bold("GAME"))
	for _, line := range [][2]string{
		{"version", "Display the binary version."},
		{"--version", "Same as above."},
		{"-v", "Same as above."},
		{"help", "Display this help message."},
		{"--help", "Same as above."},
		{"-h", "Same as above."},
		{"[file path]", "Play wordle picking a random word."},
	} {
		fmt.Fprintf(&b, "    %s %-12s %s\n", exec, line[0], line[1])
	}
	fmt.Fprintf(&b, `
GAME
    The word is picked from the input file, randomly.
    The file is expected to contain one word per line.
    Line terminator is %s.
    Empty lines and lines starting with '#' are discarded.
    If no files are specified, then read words from %s.

ENVIRONMENT
    WORDLE_PICKER         random (default), list or daily.
    WORDLE_ATTEMPT_LIMIT  Guesses allowed per game (default 6).
    DAILY_SALT            Salt for the daily word schedule.
    LOG_LEVEL             Diagnostics written to stderr (default warn).
`, underline(`'\n'`), bold("STDIN"))
	_, _ = io.WriteString(w, b.String())
}

// WriteVersion writes "<exec> <version>".
func WriteVersion(w io.Writer, exec string) {
	fmt.Fprintf(w, "%s %s\n", exec, Version)
}
