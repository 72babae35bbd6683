// Package regex re-exports the regexp entry points so that programs built on
// this module pull regular expressions from one place alongside the other
// capabilities.
package regex

import "regexp"

// Regexp is a compiled regular expression.
type Regexp = regexp.Regexp

var (
	// Compile parses a regular expression in RE2 syntax.
	Compile = regexp.Compile

	// MustCompile is Compile but panics on invalid expressions, for
	// package-level patterns.
	MustCompile = regexp.MustCompile

	// CompilePOSIX parses a POSIX ERE with leftmost-longest matching.
	CompilePOSIX = regexp.CompilePOSIX

	// MustCompilePOSIX is CompilePOSIX but panics on invalid expressions.
	MustCompilePOSIX = regexp.MustCompilePOSIX

	// QuoteMeta escapes regular expression metacharacters in text.
	QuoteMeta = regexp.QuoteMeta

	// Match reports whether b contains a match of the pattern.
	Match = regexp.Match

	// MatchString reports whether s contains a match of the pattern.
	MatchString = regexp.MatchString
)
