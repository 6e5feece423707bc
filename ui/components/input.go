package components

import (
	"github.com/elxecutor/gemini/ui/styles"
)

const inputPlaceholder = "Type your message here... (Enter to send, Ctrl+C to quit)"

// RenderInput paints the input field with a visible cursor block. The
// cursor is a rune position in [0, len(draft)]; at the end of the draft
// it renders as a highlighted space.
func RenderInput(draft string, cursor, width int) string {
	inputStyle := styles.InputStyle(width)

	if draft == "" && cursor == 0 {
		return inputStyle.Render(
			styles.CursorStyle().Render(" ") + styles.PlaceholderStyle().Render(inputPlaceholder))
	}

	runes := []rune(draft)
	if cursor > len(runes) {
		cursor = len(runes)
	}

	before := string(runes[:cursor])
	under := " "
	after := ""
	if cursor < len(runes) {
		under = string(runes[cursor])
		after = string(runes[cursor+1:])
	}

	return inputStyle.Render(before + styles.CursorStyle().Render(under) + after)
}
