package check

import (
	"fmt"
	"slices"
)

// Registry holds the ordered line and file checks for a run. It is built once
// at startup and not modified afterwards.
type Registry struct {
	lines []LineCheck
	files []FileCheck
}

// NewRegistry returns a registry whose file checks are a LineRunner over
// lines followed by files, in the given order.
func NewRegistry(lines []LineCheck, files []FileCheck) *Registry {
	lines = slices.Clone(lines)
	all := make([]FileCheck, 0, len(files)+1)
	all = append(all, LineRunner{Checks: lines})
	all = append(all, files...)
	return &Registry{lines: lines, files: all}
}

// Default returns the built-in check set: trailing whitespace per line, then
// the trailing newline of the file.
func Default() *Registry {
	return NewRegistry(
		[]LineCheck{TrailingWhitespace{}},
		[]FileCheck{TrailingNewline{}},
	)
}

// LineChecks returns the registered line checks in order.
func (r *Registry) LineChecks() []LineCheck {
	return slices.Clone(r.lines)
}

// FileChecks returns the registered file checks in order, starting with the
// line runner.
func (r *Registry) FileChecks() []FileCheck {
	return slices.Clone(r.files)
}

// Names returns the names of every line and file check, line checks first.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.lines)+len(r.files))
	for _, c := range r.lines {
		names = append(names, c.Name())
	}
	for _, c := range r.files {
		names = append(names, c.Name())
	}
	return names
}

// Without returns a copy of r without the named checks. Disabling "lines"
// removes the line runner and with it every line check. Unknown names are an
// error.
func (r *Registry) Without(names ...string) (*Registry, error) {
	known := r.Names()
	drop := make(map[string]bool, len(names))
	for _, n := range names {
		if !slices.Contains(known, n) {
			return nil, fmt.Errorf("unknown check %q (known: %v)", n, known)
		}
		drop[n] = true
	}

	var lines []LineCheck
	for _, c := range r.lines {
		if !drop[c.Name()] && !drop[LineRunner{}.Name()] {
			lines = append(lines, c)
		}
	}

	out := &Registry{lines: lines}
	for _, c := range r.files {
		if _, ok := c.(LineRunner); ok {
			if !drop[c.Name()] {
				out.files = append(out.files, LineRunner{Checks: lines})
			}
			continue
		}
		if !drop[c.Name()] {
			out.files = append(out.files, c)
		}
	}
	return out, nil
}
