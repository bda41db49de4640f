package reflow

import (
	"strings"

	"github.com/mitchellh/go-wordwrap"
)

// reflowAccumulated wraps accumulated prose to the target width with greedy
// word-wrap. Words are never broken apart: a word longer than the width
// overflows its line, and hyphens are not treated as break points.
// Protected text is returned unchanged.
func reflowAccumulated(text string, width int, protect bool) string {
	if protect {
		return text
	}
	return wordwrap.WrapString(strings.TrimSpace(text), uint(width))
}
