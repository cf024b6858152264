package seq

import (
	"fmt"
	"strings"
)

// Report collects the results of verifying a rendered frame against the
// renderer's structural invariants. It is a debugging aid: a failed
// check means a renderer bug, not bad input.
type Report struct {
	// Passed is true when every check succeeded.
	Passed bool
	// Errors lists invariant violations.
	Errors []string
	// Warnings lists suspicious but non-fatal observations.
	Warnings []string
}

// fail records an invariant violation.
func (r *Report) fail(format string, args ...any) {
	r.Passed = false
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// warn records a non-fatal observation.
func (r *Report) warn(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Summary returns a human-readable form of the report.
func (r *Report) Summary() string {
	var sb strings.Builder
	if r.Passed {
		sb.WriteString("frame check: PASSED")
	} else {
		sb.WriteString("frame check: FAILED")
	}
	for _, e := range r.Errors {
		sb.WriteString("\n  error: ")
		sb.WriteString(e)
	}
	for _, w := range r.Warnings {
		sb.WriteString("\n  warning: ")
		sb.WriteString(w)
	}
	return sb.String()
}

// VerifyFrame checks a rendered frame for the structural invariants the
// renderer guarantees: a perfectly rectangular grid, no trailing
// newline, and balanced participant box corners (every header box has a
// matching footer box).
func VerifyFrame(frame string) *Report {
	report := &Report{Passed: true}
	if frame == "" {
		report.warn("frame is empty")
		return report
	}
	if strings.HasSuffix(frame, "\n") {
		report.fail("frame ends with a trailing newline")
	}

	rows := strings.Split(frame, "\n")
	width := gc(rows[0])
	for i, row := range rows {
		if n := gc(row); n != width {
			report.fail("row %d has %d cells, want %d", i, n, width)
		}
	}

	corners := map[rune]int{}
	for _, r := range frame {
		switch r {
		case '┌', '┐', '└', '┘':
			corners[r]++
		}
	}
	// Left corners come from participant boxes only; right corners also
	// appear once per self-loop glyph.
	if corners['┌'] != corners['└'] || corners['┐'] != corners['┘'] || corners['┐'] < corners['┌'] {
		report.fail("unbalanced box corners: %d ┌, %d ┐, %d └, %d ┘",
			corners['┌'], corners['┐'], corners['└'], corners['┘'])
	}
	if corners['┌']%2 != 0 {
		report.fail("odd number of participant boxes: %d header/footer halves", corners['┌'])
	}

	return report
}
