package util

import (
	"os"
	"strings"
)

// WriteLines writes the lines to the save path separated by newlines,
// creating or truncating the file.
func WriteLines(savePath string, lines ...string) error {
	return os.WriteFile(savePath, []byte(strings.Join(lines, "\n")+"\n"), 0644)
}
