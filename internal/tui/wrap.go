// Package tui provides the Bubble Tea browsing interface.
package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// wrapWords breaks text into lines of at most width cells. Words longer than
// width are split.
func wrapWords(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	if width <= 0 {
		return []string{strings.Join(words, " ")}
	}
	var lines []string
	var line strings.Builder
	lineWidth := 0
	flush := func() {
		if lineWidth > 0 {
			lines = append(lines, line.String())
		}
		line.Reset()
		lineWidth = 0
	}
	for _, word := range words {
		for runewidth.StringWidth(word) > width {
			flush()
			head := runewidth.Truncate(word, width, "")
			if head == "" {
				break
			}
			lines = append(lines, head)
			word = strings.TrimPrefix(word, head)
		}
		wordWidth := runewidth.StringWidth(word)
		if wordWidth == 0 {
			continue
		}
		if lineWidth > 0 && lineWidth+1+wordWidth > width {
			flush()
		}
		if lineWidth > 0 {
			line.WriteByte(' ')
			lineWidth++
		}
		line.WriteString(word)
		lineWidth += wordWidth
	}
	flush()
	return lines
}
