package titlepage

import (
	"regexp"
	"strings"
)

var (
	reCRLF       = regexp.MustCompile(`\r\n?`)
	reTabs       = regexp.MustCompile(`\t+`)
	reMultiSpace = regexp.MustCompile(` {2,}`)
)

// NormalizeText collapses noisy whitespace in a raw text layer.
// Conservative: keeps line breaks, collapses runs of spaces and tabs.
func NormalizeText(s string) string {
	if s == "" {
		return s
	}
	s = reCRLF.ReplaceAllString(s, "\n")
	s = reTabs.ReplaceAllString(s, " ")
	s = reMultiSpace.ReplaceAllString(s, " ")
	return s
}

// SegmentLines splits raw page text into trimmed, non-empty lines. The
// resulting slice is the sole input of both extraction passes and must not
// be mutated afterwards.
func SegmentLines(raw string) []string {
	raw = NormalizeText(raw)
	var lines []string
	for _, l := range strings.Split(raw, "\n") {
		l = strings.TrimSpace(l)
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}
