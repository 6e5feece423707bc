package components

import (
	"github.com/elxecutor/gemini/ui/styles"
)

// RenderStatus paints the status bar, prefixing a spinner while a request
// is pending.
func RenderStatus(status string, loading bool, spinnerView string, width int) string {
	content := status
	if loading {
		content = spinnerView + " " + status
	}
	return styles.StatusStyle(width, loading).Render(content)
}
