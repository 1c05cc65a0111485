// Package changes works out which files a run should check.
package changes

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/eykd/checkpatch/internal/logger"
)

// Lister lists files changed relative to rev, or to git's default comparison
// point when rev is empty.
type Lister interface {
	ChangedFiles(ctx context.Context, rev string) ([]string, error)
}

// PatchOpener opens a patch source by name. "-" conventionally means stdin.
type PatchOpener func(name string) (io.ReadCloser, error)

// Request describes where the file list comes from.
type Request struct {
	// Files are explicitly named paths, checked first and in order.
	Files []string
	// Diff enables listing changed files through the Lister.
	Diff bool
	// Rev scopes the diff listing. Empty uses the default comparison point.
	Rev string
	// Patches are unified diff sources whose target files are added.
	Patches []string
	// Exclude holds path globs. A path matching one, or whose base name
	// matches one, is dropped.
	Exclude []string
}

// Resolver turns a Request into the ordered list of paths to check.
type Resolver struct {
	Lister    Lister
	OpenPatch PatchOpener
}

// Resolve returns explicit files, then diff names, then patch targets, minus
// excluded paths. A failing listing or unreadable patch aborts resolution.
func (r *Resolver) Resolve(ctx context.Context, req Request) ([]string, error) {
	log := logger.L()
	files := append([]string(nil), req.Files...)

	if req.Diff {
		names, err := r.Lister.ChangedFiles(ctx, req.Rev)
		if err != nil {
			return nil, fmt.Errorf("listing changed files: %w", err)
		}
		log.Debug("changes.diff", "rev", req.Rev, "count", len(names))
		files = append(files, names...)
	}

	for _, p := range req.Patches {
		names, err := r.patchFiles(p)
		if err != nil {
			return nil, err
		}
		log.Debug("changes.patch", "patch", p, "count", len(names))
		files = append(files, names...)
	}

	if len(req.Exclude) == 0 {
		return files, nil
	}
	kept := files[:0]
	for _, f := range files {
		excluded, err := Excluded(f, req.Exclude)
		if err != nil {
			return nil, err
		}
		if excluded {
			log.Debug("changes.excluded", "path", f)
			continue
		}
		kept = append(kept, f)
	}
	return kept, nil
}

func (r *Resolver) patchFiles(name string) ([]string, error) {
	rc, err := r.OpenPatch(name)
	if err != nil {
		return nil, fmt.Errorf("opening patch %s: %w", name, err)
	}
	defer rc.Close()
	names, err := PatchFiles(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return names, nil
}

// Excluded reports whether path, or its base name, matches one of globs.
func Excluded(path string, globs []string) (bool, error) {
	slashed := filepath.ToSlash(path)
	base := filepath.Base(path)
	for _, g := range globs {
		for _, candidate := range []string{slashed, base} {
			ok, err := filepath.Match(g, candidate)
			if err != nil {
				return false, fmt.Errorf("exclude pattern %q: %w", g, err)
			}
			if ok {
				return true, nil
			}
		}
	}
	return false, nil
}
