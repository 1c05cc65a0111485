package check

import (
	"strings"
	"unicode"
)

// MsgTrailingWhitespace is reported for lines ending in whitespace.
const MsgTrailingWhitespace = "trailing whitespace"

// TrailingWhitespace flags lines that end in one or more whitespace
// characters and corrects them by trimming it.
type TrailingWhitespace struct{}

// Name returns the registry name of the check.
func (TrailingWhitespace) Name() string { return "trailing-whitespace" }

// CheckLine reports line when it differs from its right-trimmed form. A line
// made only of whitespace is corrected to the empty line.
func (TrailingWhitespace) CheckLine(_ string, line string) Outcome {
	trimmed := strings.TrimRightFunc(line, unicode.IsSpace)
	if trimmed == line {
		return Pass()
	}
	return Fix(MsgTrailingWhitespace, trimmed)
}
