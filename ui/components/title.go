package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/elxecutor/gemini/ui/styles"
)

const titleText = "GEMINI CHAT TUI"

// RainbowColor returns the palette color for rune i at animation frame f.
// Pure in (i, f), so the title scrolls one palette step every five frames.
func RainbowColor(i, frame int) lipgloss.Color {
	return styles.RainbowPalette[(i+frame/5)%len(styles.RainbowPalette)]
}

// RenderTitle paints the animated title bar. The border color advances
// every frame, the per-rune colors every five.
func RenderTitle(width, frame int) string {
	var b strings.Builder
	for i, r := range []rune(titleText) {
		b.WriteString(styles.TitleRuneStyle(RainbowColor(i, frame)).Render(string(r)))
	}

	border := styles.RainbowPalette[frame%len(styles.RainbowPalette)]
	return styles.TitleStyle(width, border).Render(b.String())
}
