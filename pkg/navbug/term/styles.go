package term

import "github.com/charmbracelet/lipgloss"

var (
	colorText      = lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}
	colorDim       = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
	colorIndicator = lipgloss.AdaptiveColor{Light: "#9E9E9E", Dark: "#E0E0E0"}
	colorCard      = lipgloss.AdaptiveColor{Light: "#BDBDBD", Dark: "#4B5563"}
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText)

	CounterStyle = lipgloss.NewStyle().
			Foreground(colorText)

	HintStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	TabStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	SelectedTabStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorText)

	IndicatorStyle = lipgloss.NewStyle().
			Foreground(colorIndicator)

	// The card's border adds one cell on every side.
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorCard)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#EF4444"))
)

const (
	outlineGlyph  = "⌂"
	baselineGlyph = "■"
	indicatorRune = "━"
)
