package styles

import "github.com/charmbracelet/lipgloss"

// RainbowPalette is the fixed color cycle for the animated title.
var RainbowPalette = []lipgloss.Color{
	lipgloss.Color("1"), // red
	lipgloss.Color("3"), // yellow
	lipgloss.Color("2"), // green
	lipgloss.Color("6"), // cyan
	lipgloss.Color("4"), // blue
	lipgloss.Color("5"), // magenta
}

func TitleStyle(width int, borderColor lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Align(lipgloss.Center).
		Width(width - 2)
}

func TitleRuneStyle(color lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(color).
		Bold(true)
}

func UserBubbleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("39")).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("39")).
		Padding(0, 1)
}

func AssistantBubbleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("114")).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("114")).
		Padding(0, 1)
}

func ErrorBubbleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("203")).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("203")).
		Padding(0, 1)
}

func ThinkingBubbleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("220")).
		Padding(0, 1)
}

func BubbleHeaderStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("245"))
}

func ProgramStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("141")).
		Bold(true).
		Align(lipgloss.Center).
		Width(width)
}

func InputStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("135")).
		Padding(0, 1).
		Width(width - 4)
}

func PlaceholderStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("240"))
}

func CursorStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Reverse(true)
}

func StatusStyle(width int, loading bool) lipgloss.Style {
	fg := lipgloss.Color("40")
	if loading {
		fg = lipgloss.Color("220")
	}
	return lipgloss.NewStyle().
		Foreground(fg).
		Background(lipgloss.Color("235")).
		Padding(0, 1).
		Width(width)
}
