package reflow

import (
	"bufio"
	"io"
	"strings"

	"github.com/goerz/fmtlatex/internal/logger"
)

// DefaultWidth is the default wrap width for reflowed prose.
const DefaultWidth = 80

// Formatter reflows LaTeX source text. The zero value is not usable; create
// one with New.
type Formatter struct {
	width int
}

// New creates a Formatter that wraps prose at the given width. A
// non-positive width selects DefaultWidth.
func New(width int) *Formatter {
	if width <= 0 {
		width = DefaultWidth
	}
	return &Formatter{width: width}
}

// Width returns the configured wrap width.
func (f *Formatter) Width() int {
	return f.width
}

// Format reflows a sequence of input lines and returns the result as a
// single string, lines joined by "\n" with no trailing newline.
//
// Every input line must end with a newline terminator; a violation is a
// caller error and panics. Use FormatString or FormatReader when the input
// is not already split into terminated lines.
func (f *Formatter) Format(lines []string) string {
	out := make([]string, 0, len(lines))
	openGroups := 0
	acc := ""
	protect := false

	for _, line := range lines {
		if !strings.HasSuffix(line, "\n") {
			panic("reflow: input line is not newline-terminated")
		}
		if strings.TrimSpace(line) == "" {
			logger.Debug("blank line (paragraph break)")
			if acc != "" {
				out = append(out, reflowAccumulated(acc, f.width, protect || openGroups != 0))
			}
			out = append(out, "")
			acc, protect = "", false
			continue
		}
		// A line may hold several sentence boundaries; keep feeding the
		// remainder back in until it is fully consumed.
		for len(line) > 0 {
			var ready bool
			acc, line, openGroups, ready, protect = processLine(acc, line, openGroups)
			if ready {
				text := reflowAccumulated(acc, f.width, protect || openGroups != 0)
				logger.Debug("flush", logger.String("text", text))
				out = append(out, text)
				acc, protect = "", false
			}
		}
	}

	if acc != "" {
		out = append(out, reflowAccumulated(acc, f.width, protect || openGroups != 0))
	}

	return strings.Join(out, "\n")
}

// FormatString reflows src, treating it as newline-separated lines.
func (f *Formatter) FormatString(src string) string {
	raw := strings.Split(src, "\n")
	lines := make([]string, len(raw))
	for i, l := range raw {
		lines[i] = l + "\n"
	}
	return f.Format(lines)
}

// FormatReader reads lines from r and reflows them. A final line without a
// trailing newline is terminated before formatting, so any well-formed
// reader is accepted.
func (f *Formatter) FormatReader(r io.Reader) (string, error) {
	br := bufio.NewReader(r)
	var lines []string
	for {
		line, err := br.ReadString('\n')
		if err == io.EOF {
			if line != "" {
				lines = append(lines, line+"\n")
			}
			break
		}
		if err != nil {
			return "", err
		}
		lines = append(lines, line)
	}
	return f.Format(lines), nil
}
