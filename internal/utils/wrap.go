package utils

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const minWrapWidth = 10

// WrapText breaks text into display lines no wider than width terminal
// cells, splitting on spaces and chunking words too long to fit. Widths
// are measured in cells so CJK and emoji wrap correctly.
func WrapText(text string, width int) []string {
	if width < minWrapWidth {
		width = minWrapWidth
	}

	var lines []string
	var current strings.Builder
	currentWidth := 0

	flush := func() {
		if current.Len() > 0 {
			lines = append(lines, current.String())
			current.Reset()
			currentWidth = 0
		}
	}

	for _, word := range strings.Fields(text) {
		wordWidth := runewidth.StringWidth(word)

		if wordWidth > width {
			flush()
			for _, chunk := range chunkWord(word, width) {
				lines = append(lines, chunk)
			}
			continue
		}

		switch {
		case currentWidth == 0:
			current.WriteString(word)
			currentWidth = wordWidth
		case currentWidth+1+wordWidth <= width:
			current.WriteByte(' ')
			current.WriteString(word)
			currentWidth += 1 + wordWidth
		default:
			flush()
			current.WriteString(word)
			currentWidth = wordWidth
		}
	}
	flush()

	if len(lines) == 0 {
		lines = append(lines, "")
	}
	return lines
}

// chunkWord splits a single over-long word into width-sized pieces.
func chunkWord(word string, width int) []string {
	var chunks []string
	var chunk strings.Builder
	chunkWidth := 0

	for _, r := range word {
		rw := runewidth.RuneWidth(r)
		if chunkWidth+rw > width && chunk.Len() > 0 {
			chunks = append(chunks, chunk.String())
			chunk.Reset()
			chunkWidth = 0
		}
		chunk.WriteRune(r)
		chunkWidth += rw
	}
	if chunk.Len() > 0 {
		chunks = append(chunks, chunk.String())
	}
	return chunks
}
