package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/elxecutor/gemini/internal/models"
	"github.com/elxecutor/gemini/internal/utils"
	"github.com/elxecutor/gemini/ui/styles"
)

// RenderMessages paints the chat transcript: user bubbles right-aligned,
// assistant bubbles left-aligned, program notices centered. When the
// rendered transcript is taller than maxHeight the oldest lines are
// clipped so the view follows the newest message.
func RenderMessages(messages []models.Message, width, maxHeight int, pending bool, spinnerView string) string {
	var b strings.Builder

	for _, msg := range messages {
		switch msg.Role {
		case models.RoleProgram:
			b.WriteString(styles.ProgramStyle(width).Render(msg.Content) + "\n")
		case models.RoleUser:
			bubble := renderBubble(msg, styles.UserBubbleStyle(), width-10, false)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Right, bubble) + "\n")
		case models.RoleAssistant:
			style := styles.AssistantBubbleStyle()
			if msg.IsError {
				style = styles.ErrorBubbleStyle()
			}
			b.WriteString(renderBubble(msg, style, width-8, !msg.IsError) + "\n")
		}
	}

	if pending {
		b.WriteString(renderThinkingBubble(spinnerView) + "\n")
	}

	return clipToHeight(b.String(), maxHeight)
}

// renderBubble builds one bordered message block with a name+timestamp
// header. Assistant prose gets inline markdown styling applied per line,
// after wrapping, so style sequences never confuse the width math.
func renderBubble(msg models.Message, style lipgloss.Style, maxWidth int, markdown bool) string {
	header := styles.BubbleHeaderStyle().Render(
		msg.Role.DisplayName() + " " + msg.Timestamp.Format("15:04:05"))

	lines := utils.WrapText(msg.Content, maxWidth)
	if markdown {
		for i, line := range lines {
			lines[i] = utils.RenderMarkdownLine(line)
		}
	}

	return style.Render(header + "\n" + strings.Join(lines, "\n"))
}

func renderThinkingBubble(spinnerView string) string {
	header := styles.BubbleHeaderStyle().Render("Gemini is thinking...")
	body := spinnerView + " Processing your message..."
	return styles.ThinkingBubbleStyle().Render(header + "\n" + body)
}

// clipToHeight keeps the last maxHeight lines of the rendered transcript.
func clipToHeight(rendered string, maxHeight int) string {
	if maxHeight <= 0 {
		return rendered
	}
	lines := strings.Split(strings.TrimSuffix(rendered, "\n"), "\n")
	if len(lines) <= maxHeight {
		return rendered
	}
	return strings.Join(lines[len(lines)-maxHeight:], "\n") + "\n"
}
