// Package fileproc runs the check pipeline over files on disk and, in fix
// mode, rewrites them in place.
package fileproc

import (
	"fmt"
	"io"
	"slices"

	"github.com/eykd/checkpatch/internal/check"
	"github.com/eykd/checkpatch/internal/logger"
)

// Per-file results. Results combine with Aggregate.
const (
	StatusClean      = 0
	StatusViolations = -1
)

// Processor checks one file at a time.
type Processor struct {
	Registry *check.Registry
	Store    Store
	// Out receives the "checking" notices and the diagnostics.
	Out     io.Writer
	Fix     bool
	Verbose bool
}

// Process checks path and returns StatusClean or StatusViolations. A path that
// is not an existing regular file is clean and produces no output. Errors
// opening, reading, rewriting or closing the file are returned.
func (p *Processor) Process(path string) (status int, err error) {
	log := logger.L().With("path", path)

	if !p.Store.IsRegular(path) {
		log.Debug("file.skipped", "reason", "not a regular file")
		return StatusClean, nil
	}
	shown := sanitizePath(path)
	if p.Verbose {
		fmt.Fprintf(p.Out, "checking %s\n", shown)
	}

	doc, err := p.Store.Open(path, p.Fix)
	if err != nil {
		return StatusClean, fmt.Errorf("opening %s: %w", shown, err)
	}
	defer func() {
		if cerr := doc.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", shown, cerr)
		}
	}()

	data, err := io.ReadAll(doc)
	if err != nil {
		return StatusClean, fmt.Errorf("reading %s: %w", shown, err)
	}

	rep := p.Registry.Run(path, string(data), p.Verbose)
	for _, d := range rep.Diagnostics {
		d.Path = sanitizePath(d.Path)
		fmt.Fprintln(p.Out, d.String())
	}
	log.Debug("file.checked", "violations", rep.Violations, "diagnostics", len(rep.Diagnostics))

	if rep.Violations == 0 {
		return StatusClean, nil
	}
	if p.Fix {
		if err := doc.Replace(rep.Text); err != nil {
			return StatusViolations, fmt.Errorf("rewriting %s: %w", shown, err)
		}
		log.Info("file.rewritten", "bytes", len(rep.Text))
	}
	return StatusViolations, nil
}

// Aggregate combines per-file statuses: the minimum of the statuses and
// StatusClean, so any failing file fails the run and no files is clean.
func Aggregate(statuses []int) int {
	return slices.Min(append([]int{StatusClean}, statuses...))
}
