// Package util contains helpers shared by CLI commands.
package util

// Arg returns the positional argument, or an empty string if it is not present.
func Arg(args []string, i int) string {
	if i >= 0 && i < len(args) {
		return args[i]
	}
	return ""
}
