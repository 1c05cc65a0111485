package fileproc

import "strings"

// sanitizePath replaces control characters (runes < 0x20 or == 0x7F) with '?'
// so that file names taken from git or a patch cannot inject terminal escapes
// into diagnostics.
func sanitizePath(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7F {
			return '?'
		}
		return r
	}, s)
}
