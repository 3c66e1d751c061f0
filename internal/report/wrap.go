package report

import (
	"strings"
	"unicode/utf8"
)

// wrapText greedily wraps text at maxChars characters per line, never
// breaking mid-word. A single word longer than maxChars gets its own line.
func wrapText(text string, maxChars int) []string {
	words := strings.Fields(text)
	var lines []string
	current := ""

	for _, word := range words {
		test := word
		if current != "" {
			test = current + " " + word
		}
		if utf8.RuneCountInString(test) > maxChars {
			if current != "" {
				lines = append(lines, current)
			}
			current = word
		} else {
			current = test
		}
	}

	if current != "" {
		lines = append(lines, current)
	}
	return lines
}
