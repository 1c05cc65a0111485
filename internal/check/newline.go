package check

import "strings"

// MsgNoTrailingNewline is reported for non-empty files without a final newline.
const MsgNoTrailingNewline = "no newline at end of file"

// TrailingNewline flags non-empty files whose last byte is not '\n' and
// appends exactly one.
type TrailingNewline struct{}

// Name returns the registry name of the check.
func (TrailingNewline) Name() string { return "trailing-newline" }

// CheckFile implements FileCheck. Empty text is clean.
func (TrailingNewline) CheckFile(_ string, text string, _ bool) Outcome {
	if text == "" || strings.HasSuffix(text, "\n") {
		return Pass()
	}
	return Fix(MsgNoTrailingNewline, text+"\n")
}
