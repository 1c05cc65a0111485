package check

import "strings"

// MsgLineIssues summarises a line runner outcome that corrected at least one line.
const MsgLineIssues = "one or more line issues"

// LineRunner is the FileCheck that applies every line check to every line,
// top to bottom. Each check on a line sees the output of the previous one.
type LineRunner struct {
	Checks []LineCheck
}

// Name returns the registry name of the runner.
func (LineRunner) Name() string { return "lines" }

// CheckFile implements FileCheck. Per-line findings are returned as Notes.
// When any line was corrected the outcome is Repaired: the notes already
// describe every issue, so the summary itself is not printed. Findings that
// corrected nothing leave the outcome Clean, carrying only their notes.
func (r LineRunner) CheckFile(path, text string, _ bool) Outcome {
	lines, ends := splitLines(text)

	var notes []Diagnostic
	changed := false
	for i := range lines {
		for _, c := range r.Checks {
			o := c.CheckLine(path, lines[i])
			if o.Status == Clean {
				continue
			}
			if o.Prints() {
				notes = append(notes, Diagnostic{Path: path, Line: i + 1, Message: o.Message})
			}
			if o.Changed() {
				lines[i] = o.Text
				changed = true
			}
		}
	}

	if !changed {
		return Outcome{Status: Clean, Notes: notes}
	}
	return Outcome{
		Status:  Repaired,
		Message: MsgLineIssues,
		Text:    joinLines(lines, ends),
		Notes:   notes,
	}
}

// splitLines splits text on '\n', returning each line without its terminator
// and, in ends, the terminator that followed it ("\n", "\r\n", or "" for an
// unterminated last line). Empty text has no lines.
func splitLines(text string) (lines, ends []string) {
	for text != "" {
		i := strings.IndexByte(text, '\n')
		if i < 0 {
			lines = append(lines, text)
			ends = append(ends, "")
			break
		}
		line, end := text[:i], "\n"
		if strings.HasSuffix(line, "\r") {
			line, end = line[:len(line)-1], "\r\n"
		}
		lines = append(lines, line)
		ends = append(ends, end)
		text = text[i+1:]
	}
	return lines, ends
}

func joinLines(lines, ends []string) string {
	var b strings.Builder
	for i, l := range lines {
		b.WriteString(l)
		b.WriteString(ends[i])
	}
	return b.String()
}
