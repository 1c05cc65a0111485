package changes

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const gitPatch = `diff --git a/src/main.c b/src/main.c
index 3b18e51..a9f2c1d 100644
--- a/src/main.c
+++ b/src/main.c
@@ -1,2 +1,2 @@
 int main(void)
-{ return 0; }
+{ return 1; }
diff --git a/old.txt b/old.txt
deleted file mode 100644
index 3b18e51..0000000
--- a/old.txt
+++ /dev/null
@@ -1 +0,0 @@
-hello
diff --git a/docs/new.md b/docs/new.md
new file mode 100644
index 0000000..ce01362
--- /dev/null
+++ b/docs/new.md
@@ -0,0 +1 @@
+hello
`

func TestPatchFiles_GitPatch(t *testing.T) {
	names, err := PatchFiles(strings.NewReader(gitPatch))

	require.NoError(t, err)
	assert.Equal(t, []string{"src/main.c", "docs/new.md"}, names)
}

func TestPatchFiles_PlainUnifiedDiff(t *testing.T) {
	patch := "--- util.h.orig\n+++ util.h\n@@ -1 +1 @@\n-#define X 1\n+#define X 2\n"

	names, err := PatchFiles(strings.NewReader(patch))

	require.NoError(t, err)
	assert.Equal(t, []string{"util.h"}, names)
}

func TestPatchFiles_Empty(t *testing.T) {
	names, err := PatchFiles(strings.NewReader(""))

	require.NoError(t, err)
	assert.Empty(t, names)
}

type fakeLister struct {
	names   []string
	err     error
	gotRev  string
	invoked bool
}

func (f *fakeLister) ChangedFiles(_ context.Context, rev string) ([]string, error) {
	f.invoked = true
	f.gotRev = rev
	return f.names, f.err
}

func patchesFrom(m map[string]string) PatchOpener {
	return func(name string) (io.ReadCloser, error) {
		s, ok := m[name]
		if !ok {
			return nil, os.ErrNotExist
		}
		return io.NopCloser(strings.NewReader(s)), nil
	}
}

func TestResolve_ExplicitFilesOnly(t *testing.T) {
	lister := &fakeLister{names: []string{"never.c"}}
	r := &Resolver{Lister: lister}

	files, err := r.Resolve(context.Background(), Request{Files: []string{"b.c", "a.c"}})

	require.NoError(t, err)
	assert.Equal(t, []string{"b.c", "a.c"}, files)
	assert.False(t, lister.invoked, "diff listing must not run without diff mode")
}

func TestResolve_DiffAppendsAfterExplicitFiles(t *testing.T) {
	lister := &fakeLister{names: []string{"x.c", "y.c"}}
	r := &Resolver{Lister: lister}

	files, err := r.Resolve(context.Background(), Request{Files: []string{"a.c"}, Diff: true, Rev: "HEAD~1"})

	require.NoError(t, err)
	assert.Equal(t, []string{"a.c", "x.c", "y.c"}, files)
	assert.Equal(t, "HEAD~1", lister.gotRev)
}

func TestResolve_DiffFailureIsFatal(t *testing.T) {
	boom := errors.New("git: not found")
	r := &Resolver{Lister: &fakeLister{names: []string{"x.c"}, err: boom}}

	files, err := r.Resolve(context.Background(), Request{Files: []string{"a.c"}, Diff: true})

	assert.ErrorIs(t, err, boom)
	assert.Nil(t, files)
}

func TestResolve_EmptyResult(t *testing.T) {
	r := &Resolver{Lister: &fakeLister{}}

	files, err := r.Resolve(context.Background(), Request{Diff: true})

	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestResolve_PatchesAppendAfterDiff(t *testing.T) {
	r := &Resolver{
		Lister:    &fakeLister{names: []string{"d.c"}},
		OpenPatch: patchesFrom(map[string]string{"fix.patch": gitPatch}),
	}

	files, err := r.Resolve(context.Background(), Request{
		Files:   []string{"a.c"},
		Diff:    true,
		Patches: []string{"fix.patch"},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"a.c", "d.c", "src/main.c", "docs/new.md"}, files)
}

func TestResolve_MissingPatchIsFatal(t *testing.T) {
	r := &Resolver{OpenPatch: patchesFrom(nil)}

	_, err := r.Resolve(context.Background(), Request{Patches: []string{"nope.patch"}})

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "nope.patch")
}

func TestResolve_Exclude(t *testing.T) {
	r := &Resolver{}

	files, err := r.Resolve(context.Background(), Request{
		Files:   []string{"vendor/lib.c", "src/a.c", "logo.svg", "src/img/icon.svg", "src/b.c"},
		Exclude: []string{"vendor/*", "*.svg"},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"src/a.c", "src/b.c"}, files)
}

func TestResolve_BadExcludePattern(t *testing.T) {
	r := &Resolver{}

	_, err := r.Resolve(context.Background(), Request{Files: []string{"a.c"}, Exclude: []string{"[oops"}})

	assert.Error(t, err)
}

func TestResolve_DoesNotAliasCallerSlice(t *testing.T) {
	in := []string{"keep.c", "drop.svg"}
	r := &Resolver{}

	_, err := r.Resolve(context.Background(), Request{Files: in, Exclude: []string{"*.svg"}})

	require.NoError(t, err)
	assert.Equal(t, []string{"keep.c", "drop.svg"}, in)
}
