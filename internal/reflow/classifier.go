// Package reflow re-wraps LaTeX prose to a fixed column width while keeping
// layout-significant lines (comments, sectioning commands, environments)
// untouched, and puts each sentence on its own output line.
package reflow

import "regexp"

var (
	// A comment line: either an unescaped % somewhere after a non-backslash
	// character, or a % preceded only by whitespace from line start.
	commentPattern = regexp.MustCompile(`^(.*[^\\]|\s*)%`)

	// Sectioning commands stay on their own line.
	sectionPattern = regexp.MustCompile(`^\s*\\(part|chapter|section|subsection|subsubsection|image)`)

	// document/abstract boundaries are hard breaks regardless of grouping
	// balance, unlike generic begin/end markers.
	beginDocPattern = regexp.MustCompile(`^\s*\\begin\{(document|abstract)`)
	endDocPattern   = regexp.MustCompile(`^\s*\\end\{(document|abstract)`)

	beginPattern = regexp.MustCompile(`\\begin`)
	endPattern   = regexp.MustCompile(`\\end`)
)

// groupTally returns the number of \begin markers minus the number of \end
// markers in the line. Occurrences are counted raw: no nesting or balance
// checks, and a negative result flows through untouched.
func groupTally(line string) int {
	return len(beginPattern.FindAllString(line, -1)) - len(endPattern.FindAllString(line, -1))
}

// isProtected reports whether the (already trimmed) line must be emitted on
// its own output line, verbatim. Comments and section headers are
// layout-significant; document/abstract markers must never merge with
// surrounding text.
func isProtected(line string) bool {
	return commentPattern.MatchString(line) ||
		sectionPattern.MatchString(line) ||
		beginDocPattern.MatchString(line) ||
		endDocPattern.MatchString(line)
}
