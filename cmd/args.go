package cmd

import "strings"

// NormalizeArgs rewrites a bare "--diff" into "--diff=<range>", taking the
// following argument as the range unless it is missing or starts with "-".
// Without a range it becomes "--diff=", which selects git's default
// comparison point. Arguments after "--" are left alone.
func NormalizeArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			out = append(out, args[i:]...)
			break
		}
		if a != "--diff" {
			out = append(out, a)
			continue
		}
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			out = append(out, "--diff="+args[i+1])
			i++
			continue
		}
		out = append(out, "--diff=")
	}
	return out
}
