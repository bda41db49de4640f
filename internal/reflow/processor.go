package reflow

import (
	"strings"
	"unicode"

	"github.com/goerz/fmtlatex/internal/logger"
)

// processLine consumes one raw line together with the current accumulator
// state and returns the updated state:
//
//	acc        accumulated sentence text, possibly extended by this call
//	rest       unconsumed remainder of line, to be fed back in by the driver
//	openGroups running \begin/\end tally after this call
//	ready      the accumulator must be flushed before continuing
//	protect    the flushed accumulator bypasses reflow (emitted verbatim)
//
// Plain prose is split at the first sentence boundary and appended to the
// accumulator. A line that opens, closes, or sits inside an unbalanced group
// is absorbed verbatim, as is a protected line — but only when the
// accumulator is empty; otherwise the pending prose is force-flushed first
// and the same physical line is re-processed on the next call.
func processLine(acc, line string, openGroups int) (string, string, int, bool, bool) {
	logger.Debug("processLine", logger.String("line", line))

	l := strings.TrimSpace(line)
	tally := 0
	ready := false
	protect := false

	protected := isProtected(l)
	inGroup := false
	if !protected {
		tally = groupTally(l)
		if tally == 0 && openGroups == 0 {
			first, rest := SplitFirstSentence(l)
			if acc != "" {
				acc += " " + first
			} else {
				acc = first
			}
			line = rest
			if rest != "" || endsWithFullStop(first) {
				ready = true
			}
		} else {
			inGroup = true
		}
	}

	if protected || inGroup {
		if acc == "" {
			// Absorb the whole line verbatim, keeping its indentation.
			acc = strings.TrimRightFunc(line, unicode.IsSpace)
			line = ""
			ready = true
			protect = true
			openGroups += tally
		} else {
			// Flush the pending prose first; the protected line stays
			// unconsumed for the next call.
			ready = true
		}
	}

	logger.Debug("processLine result",
		logger.String("acc", acc),
		logger.String("rest", line),
		logger.Int("openGroups", openGroups),
		logger.Bool("ready", ready),
		logger.Bool("protect", protect))

	return acc, line, openGroups, ready, protect
}
