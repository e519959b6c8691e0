// assets/embed.go
//
// Embedded default word list, used when no WORDS_FILE is configured.

package assets

import (
	"embed"
	"io/fs"
)

//go:embed answers.txt
var FS embed.FS

// OpenAnswers opens the embedded default word list.
func OpenAnswers() (fs.File, error) {
	return FS.Open("answers.txt")
}
