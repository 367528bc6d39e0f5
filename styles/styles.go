package styles

import "github.com/charmbracelet/lipgloss"

var (
	Red    = lipgloss.Color("#ff0000")
	White  = lipgloss.Color("#ffffff")
	Green  = lipgloss.Color("#9dcc3a")
	Orange = lipgloss.Color("#D3A347")

	TextStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#111222", Dark: "#FAFAFA"})
	TitleStyle = TextStyle.Copy().Bold(true)
	MatchStyle = lipgloss.NewStyle().Foreground(Green)
	HintStyle  = lipgloss.NewStyle().Foreground(Orange).Italic(true)
)

// RenderError returns a formatted error string.
func RenderError(msg string) string {
	label := lipgloss.NewStyle().Background(Red).Foreground(White).Bold(true).Padding(0, 1).Render("Error")
	content := lipgloss.NewStyle().Bold(true).Padding(0, 1).Render(msg)
	return label + content
}
