// Package textfit wraps caption text to a width and picks the largest font
// size whose wrapped block fits the text zone.
package textfit

import (
	"strings"
)

// MeasureFunc returns the rendered width of a single line.
type MeasureFunc func(line string) float64

// Wrap splits text into display lines no wider than maxWidth where possible.
//
// Explicit line breaks always start a new line and a blank paragraph becomes
// one empty line. Inside a paragraph, words separated by any whitespace run
// are joined by single spaces and packed greedily. A word wider than maxWidth
// is put on a line of its own and never split.
func Wrap(text string, maxWidth float64, measure MeasureFunc) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var lines []string
	for _, para := range strings.Split(text, "\n") {
		para = strings.TrimSuffix(para, "\r")
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		line := ""
		for _, word := range words {
			candidate := word
			if line != "" {
				candidate = line + " " + word
			}
			if line != "" && measure(candidate) > maxWidth {
				lines = append(lines, line)
				line = word
				continue
			}
			line = candidate
		}
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
