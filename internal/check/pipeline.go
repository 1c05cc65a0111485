package check

// FileReport is the result of running every file check over one file.
type FileReport struct {
	// Text is the file text after every correction.
	Text string
	// Violations counts the file checks that returned a non-Clean outcome.
	Violations int
	// Diagnostics are the printable findings in the order they were made.
	Diagnostics []Diagnostic
}

// Run applies the file checks of r to text in registration order. Each check
// receives the text as corrected by the checks before it.
func (r *Registry) Run(path, text string, verbose bool) FileReport {
	rep := FileReport{Text: text}
	for _, c := range r.files {
		o := c.CheckFile(path, rep.Text, verbose)
		rep.Diagnostics = append(rep.Diagnostics, o.Notes...)
		if o.Status == Clean {
			continue
		}
		rep.Violations++
		if o.Prints() {
			rep.Diagnostics = append(rep.Diagnostics, Diagnostic{Path: path, Message: o.Message})
		}
		if o.Changed() {
			rep.Text = o.Text
		}
	}
	return rep
}
