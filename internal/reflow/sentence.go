package reflow

import (
	"strings"
	"unicode"

	"github.com/dlclark/regexp2"
)

// fullStopPattern matches a sentence-ending period only: the period must
// follow a character that can end a word (letter, digit, @, $, or a closing
// brace) and must not be followed by a backslash or tilde (abbreviations,
// non-breaking-space-protected periods), a word character (decimal numbers
// like 3.14), or a comma ("etc.," forms). Uppercase letters are deliberately
// absent from the lookbehind class, so "J. Smith" or "Fig. 3" style
// initials do not end a sentence.
//
// The lookbehind/lookahead require regexp2; the stdlib RE2 engine cannot
// express this pattern.
var fullStopPattern = regexp2.MustCompile(`(?<=[@$}0-9a-z])\.(?![\\~\w,])`, regexp2.None)

// findSentenceBoundary returns the rune position just after the first
// sentence-ending period in line, or -1 if there is none.
func findSentenceBoundary(line string) int {
	m, err := fullStopPattern.FindStringMatch(line)
	if err != nil || m == nil {
		return -1
	}
	// regexp2 indices are rune-based.
	return m.Index + m.Length
}

// SplitFirstSentence splits line just after its first sentence-ending
// period. The first return value includes the period; the remainder has
// leading whitespace stripped. If the line holds no sentence boundary it is
// returned whole, with an empty remainder.
func SplitFirstSentence(line string) (string, string) {
	pos := findSentenceBoundary(line)
	if pos < 0 {
		return line, ""
	}
	runes := []rune(line)
	return string(runes[:pos]), strings.TrimLeftFunc(string(runes[pos:]), unicode.IsSpace)
}

// endsWithFullStop reports whether the sentence-boundary pattern matches
// within the last two characters of the right-trimmed line. The two-rune
// window means the lookbehind only sees context inside the window, which is
// exactly the behavior the split/flush decision relies on.
func endsWithFullStop(line string) bool {
	trimmed := []rune(strings.TrimRightFunc(line, unicode.IsSpace))
	if len(trimmed) > 2 {
		trimmed = trimmed[len(trimmed)-2:]
	}
	ok, err := fullStopPattern.MatchString(string(trimmed))
	return err == nil && ok
}
