package changes

import (
	"fmt"
	"io"
	"strings"

	"github.com/sourcegraph/go-diff/diff"
)

const devNull = "/dev/null"

// PatchFiles returns the post-patch names of the files a unified diff
// touches, in patch order. Files the patch deletes are left out, and the
// conventional "a/" and "b/" prefixes are stripped.
func PatchFiles(r io.Reader) ([]string, error) {
	fileDiffs, err := diff.NewMultiFileDiffReader(r).ReadAllFiles()
	if err != nil {
		return nil, fmt.Errorf("parsing patch: %w", err)
	}
	var names []string
	for _, fd := range fileDiffs {
		name := fd.NewName
		if name == "" || name == devNull {
			continue
		}
		names = append(names, stripPrefix(name))
	}
	return names, nil
}

func stripPrefix(name string) string {
	for _, p := range []string{"a/", "b/"} {
		if strings.HasPrefix(name, p) {
			return name[len(p):]
		}
	}
	return name
}
