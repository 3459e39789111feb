package wordlist

import (
	"strings"
	"unicode"
	"unicode/utf16"
)

// NormalizeNewlines converts CRLF and lone CR line endings to LF.
func NormalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// Trim removes leading and trailing whitespace using the ECMAScript notion
// of whitespace, which the downstream application shares.
func Trim(s string) string {
	return strings.TrimFunc(s, isSpace)
}

func isSpace(r rune) bool {
	if r == '\uFEFF' {
		return true
	}
	// NEL is Unicode White_Space but not ECMAScript whitespace.
	return r != '\u0085' && unicode.IsSpace(r)
}

// textLength returns the length of s in UTF-16 code units.
func textLength(s string) int {
	n := 0
	for _, r := range s {
		if l := utf16.RuneLen(r); l > 0 {
			n += l
		} else {
			n++
		}
	}
	return n
}

// nonEmptyLines splits normalized text into trimmed, non-empty lines.
func nonEmptyLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(NormalizeNewlines(text), "\n") {
		line = Trim(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
