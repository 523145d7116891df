package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/neurosprint/internal/domain"
	"github.com/alexanderramin/neurosprint/internal/sprint"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// CategoryStyle returns the color used for a category everywhere.
func CategoryStyle(c domain.Category) lipgloss.Style {
	switch c {
	case domain.CategoryFoundation:
		return StyleBlue
	case domain.CategoryDrive:
		return StyleHeader
	case domain.CategoryJoy:
		return StyleGreen
	case domain.CategoryReflection:
		return StylePurple
	default:
		return StyleDim
	}
}

// CategoryBadge renders the one-letter category code, e.g. "[D]".
func CategoryBadge(c domain.Category) string {
	return CategoryStyle(c).Render("[" + string(c) + "]")
}

// KindBadge renders a week's sprint classification.
func KindBadge(c sprint.Classification) string {
	if c.IsIntegration() {
		return StylePurple.Render("◆ " + sprint.Label(c))
	}
	return StyleBlue.Render("● " + sprint.Label(c))
}

// CheckMark renders the completion box of a task.
func CheckMark(done bool) string {
	if done {
		return StyleGreen.Render("✔")
	}
	return StyleDim.Render("○")
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
