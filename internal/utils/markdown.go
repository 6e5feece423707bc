package utils

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Inline markdown styling for assistant replies. Intentionally small: the
// API's prose mostly uses bold, italics, inline code, headings and bullet
// lists, and anything unrecognized passes through as plain text.

func boldStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true)
}

func italicStyle() lipgloss.Style {
	return lipgloss.NewStyle().Italic(true)
}

func codeStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color("236")).
		Padding(0, 1)
}

func headingStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Underline(true)
}

var (
	codeRegex   = regexp.MustCompile("`[^`]+`")
	boldRegex   = regexp.MustCompile(`\*\*[^*]+\*\*`)
	italicRegex = regexp.MustCompile(`_[^_]+_`)
)

// RenderInline styles bold, italic and inline code within one line.
// Code is handled first so its content is not re-parsed as formatting.
func RenderInline(line string) string {
	line = codeRegex.ReplaceAllStringFunc(line, func(match string) string {
		return codeStyle().Render(strings.Trim(match, "`"))
	})
	line = boldRegex.ReplaceAllStringFunc(line, func(match string) string {
		return boldStyle().Render(strings.Trim(match, "*"))
	})
	line = italicRegex.ReplaceAllStringFunc(line, func(match string) string {
		return italicStyle().Render(strings.Trim(match, "_"))
	})
	return line
}

// RenderMarkdownLine styles one line, handling heading and list prefixes
// before inline formatting.
func RenderMarkdownLine(line string) string {
	for _, prefix := range []string{"### ", "## ", "# "} {
		if title, found := strings.CutPrefix(line, prefix); found {
			return headingStyle().Render(stripInlineMarks(title))
		}
	}

	if item, found := strings.CutPrefix(line, "- "); found {
		return "• " + RenderInline(item)
	}
	if item, found := strings.CutPrefix(line, "* "); found {
		return "• " + RenderInline(item)
	}

	return RenderInline(line)
}

// stripInlineMarks drops formatting marks where nested styling cannot
// apply (inside an already-styled heading).
func stripInlineMarks(text string) string {
	text = strings.ReplaceAll(text, "**", "")
	text = strings.ReplaceAll(text, "`", "")
	return text
}
