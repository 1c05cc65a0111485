// Package check defines the line and file checks applied to source files and
// the pipeline that threads their corrections through a file's text.
package check

import "fmt"

// Status classifies what a check found and whether it produced new text.
type Status int

const (
	// Clean means the check found nothing to report or correct.
	Clean Status = iota
	// Repaired means the text was corrected without a printed diagnostic.
	Repaired
	// Reported means a diagnostic was produced but the text is unchanged.
	Reported
	// Corrected means a diagnostic was produced and the text was corrected.
	Corrected
)

// String returns the lowercase status name used in logs.
func (s Status) String() string {
	switch s {
	case Clean:
		return "clean"
	case Repaired:
		return "repaired"
	case Reported:
		return "reported"
	case Corrected:
		return "corrected"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// Outcome is the result of running a single check.
type Outcome struct {
	Status Status
	// Message is a human-readable description of the issue. Empty when Clean.
	Message string
	// Text is the corrected line or file text. Only meaningful when the status
	// is Repaired or Corrected.
	Text string
	// Notes are nested diagnostics found while producing this outcome, in
	// the order they were found (per-line findings of the line runner).
	Notes []Diagnostic
}

// Changed reports whether the outcome carries corrected text.
func (o Outcome) Changed() bool {
	return o.Status == Repaired || o.Status == Corrected
}

// Prints reports whether the outcome should be shown as a diagnostic.
func (o Outcome) Prints() bool {
	return o.Status == Reported || o.Status == Corrected
}

// Pass returns the Clean outcome.
func Pass() Outcome { return Outcome{Status: Clean} }

// Fix returns an outcome that reports msg and replaces the text with fixed.
func Fix(msg, fixed string) Outcome {
	return Outcome{Status: Corrected, Message: msg, Text: fixed}
}

// Repair returns an outcome that silently replaces the text with fixed.
func Repair(fixed string) Outcome {
	return Outcome{Status: Repaired, Text: fixed}
}

// Report returns an outcome that reports msg without touching the text.
func Report(msg string) Outcome {
	return Outcome{Status: Reported, Message: msg}
}

// Diagnostic is a single printed finding.
type Diagnostic struct {
	// Path is the file the finding belongs to.
	Path string
	// Line is the 1-based line number, or 0 for a whole-file finding.
	Line    int
	Message string
}

// String renders the diagnostic as "path:line: message", or "path: message"
// for whole-file findings.
func (d Diagnostic) String() string {
	if d.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", d.Path, d.Line, d.Message)
	}
	return fmt.Sprintf("%s: %s", d.Path, d.Message)
}

// LineCheck inspects a single line, given without its terminator.
type LineCheck interface {
	Name() string
	CheckLine(path, line string) Outcome
}

// FileCheck inspects the full text of a file.
type FileCheck interface {
	Name() string
	CheckFile(path, text string, verbose bool) Outcome
}
