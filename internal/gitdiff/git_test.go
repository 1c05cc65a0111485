package gitdiff

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChangedFiles_BuildsArgs(t *testing.T) {
	tests := []struct {
		name     string
		rev      string
		wantArgs []string
	}{
		{name: "default comparison", rev: "", wantArgs: []string{"diff", "--name-only", "-z"}},
		{name: "with range", rev: "origin/master..HEAD", wantArgs: []string{"diff", "--name-only", "-z", "origin/master..HEAD"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotDir string
			var gotArgs []string
			g := &Git{Dir: "/repo", Run: func(_ context.Context, dir string, args ...string) ([]byte, error) {
				gotDir, gotArgs = dir, args
				return nil, nil
			}}

			names, err := g.ChangedFiles(context.Background(), tt.rev)

			require.NoError(t, err)
			assert.Empty(t, names)
			assert.Equal(t, "/repo", gotDir)
			assert.Equal(t, tt.wantArgs, gotArgs)
		})
	}
}

func TestChangedFiles_SplitsNULSeparatedNames(t *testing.T) {
	g := &Git{Run: func(context.Context, string, ...string) ([]byte, error) {
		return []byte("src/a.c\x00docs/with space.md\x00caf\xc3\xa9.txt\x00"), nil
	}}

	names, err := g.ChangedFiles(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, []string{"src/a.c", "docs/with space.md", "café.txt"}, names)
}

func TestChangedFiles_PropagatesRunnerError(t *testing.T) {
	boom := errors.New("not a git repository")
	g := &Git{Run: func(context.Context, string, ...string) ([]byte, error) {
		return nil, boom
	}}

	_, err := g.ChangedFiles(context.Background(), "HEAD")

	assert.ErrorIs(t, err, boom)
}

func TestExecRunner_RealRepository(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	dir := t.TempDir()
	git := func(args ...string) {
		t.Helper()
		_, err := ExecRunner(context.Background(), dir, args...)
		require.NoError(t, err)
	}
	git("init", "-q")
	git("config", "user.email", "test@example.com")
	git("config", "user.name", "Test")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("one\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("two\n"), 0o644))
	git("add", ".")
	git("-c", "commit.gpgsign=false", "commit", "-q", "-m", "init")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("two \n"), 0o644))

	names, err := (&Git{Dir: dir}).ChangedFiles(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, []string{"b.txt"}, names)
}

func TestExecRunner_FailureIsError(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	_, err := (&Git{Dir: t.TempDir()}).ChangedFiles(context.Background(), "no-such-rev..HEAD")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "git diff --name-only -z")
}
