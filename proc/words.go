// Package proc runs other programs: shell word handling, argument vector
// construction and thin sugar over os/exec for the common capture and
// pass-through cases. On unix-like targets it additionally provides process
// image replacement (Exec); on other platforms those symbols do not exist.
package proc

import (
	"strings"

	shellwords "github.com/mattn/go-shellwords"
)

// Split splits a command line into words using POSIX shell rules.
func Split(line string) ([]string, error) {
	return shellwords.Parse(line)
}

// Join quotes each word as needed and joins them into a single command line
// that Split would parse back into the same words.
func Join(words []string) string {
	quoted := make([]string, 0, len(words))
	for _, word := range words {
		quoted = append(quoted, Escape(word))
	}
	return strings.Join(quoted, " ")
}

// Escape quotes a single word for a POSIX shell. Words containing no special
// characters are returned as is.
func Escape(word string) string {
	if word == "" {
		return "''"
	}
	if !strings.ContainsAny(word, " \t\n\"'`$\\|&;<>()*?[]#~%{}!") {
		return word
	}
	return "'" + strings.ReplaceAll(word, "'", `'\''`) + "'"
}
