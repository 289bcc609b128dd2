// assets/embed.go
//
// Built-in word lists, used when no word files are configured.
//   - answers.txt: answer pool.
//   - allowed.txt: extra accepted guesses.
// Lines starting with '#' are comments.

package assets

import (
	"embed"
	"io/fs"
)

const (
	AnswersFile = "answers.txt"
	AllowedFile = "allowed.txt"
)

//go:embed allowed.txt answers.txt
var files embed.FS

// FS exposes the embedded lists read-only.
func FS() fs.FS { return files }
