package extract

import "strings"

// Sanitize replaces invalid UTF-8 sequences with U+FFFD so that downstream
// regexp matching and length computations cannot choke on a lossy upstream
// decode. Every page goes through this before any pattern runs.
func Sanitize(s string) string {
	return strings.ToValidUTF8(s, "�")
}
