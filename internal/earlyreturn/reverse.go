package earlyreturn

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Reverse returns s with its code points in reverse order.
// The empty string is returned as-is without allocating.
func Reverse(s string) string {
	if s == "" {
		return ""
	}

	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// ReverseGraphemes reverses s by user-perceived character, so combining
// marks, flags and ZWJ emoji sequences stay attached to their base.
//
// Applying it twice returns s only when s does not start with a combining
// mark that lacks a base character: after reversal that mark follows, and
// joins, the preceding cluster.
func ReverseGraphemes(s string) string {
	if s == "" {
		return ""
	}

	var clusters []string
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		clusters = append(clusters, g.Str())
	}

	var sb strings.Builder
	sb.Grow(len(s))
	for i := len(clusters) - 1; i >= 0; i-- {
		sb.WriteString(clusters[i])
	}
	return sb.String()
}
