// Package gitdiff lists the files changed in a git working tree.
package gitdiff

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Runner runs git with args in dir and returns its stdout.
type Runner func(ctx context.Context, dir string, args ...string) ([]byte, error)

// Git lists changed files by running the git executable.
type Git struct {
	// Dir is the working directory for git. Empty means the current one.
	Dir string
	// Run defaults to ExecRunner.
	Run Runner
}

// ChangedFiles returns the names printed by "git diff --name-only", scoped to
// rev when it is non-empty, in git's order. Names are read NUL-separated so
// that unusual file names arrive unquoted.
func (g *Git) ChangedFiles(ctx context.Context, rev string) ([]string, error) {
	args := []string{"diff", "--name-only", "-z"}
	if rev != "" {
		args = append(args, rev)
	}
	run := g.Run
	if run == nil {
		run = ExecRunner
	}
	out, err := run(ctx, g.Dir, args...)
	if err != nil {
		return nil, err
	}
	return splitNames(out), nil
}

func splitNames(out []byte) []string {
	var names []string
	for _, n := range bytes.Split(out, []byte{0}) {
		if len(n) == 0 {
			continue
		}
		names = append(names, string(n))
	}
	return names
}

// ExecRunner runs the git executable found on PATH. A non-zero exit is
// returned as an error carrying git's stderr.
func ExecRunner(ctx context.Context, dir string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			if msg := strings.TrimSpace(stderr.String()); msg != "" {
				return nil, fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), err, msg)
			}
		}
		return nil, fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
	}
	return out, nil
}
