package render

import "github.com/charmbracelet/lipgloss"

var (
	colorSmallest = lipgloss.Color("#2CD7C7")
	colorMast     = lipgloss.Color("#2C4A54")
	colorGround   = lipgloss.Color("#8B7355")
	colorHeading  = lipgloss.Color("#F4D03F")
)

var styles = struct {
	Heading  lipgloss.Style
	Smallest lipgloss.Style
	Other    lipgloss.Style
	Pole     lipgloss.Style
	Muted    lipgloss.Style
}{
	Heading:  lipgloss.NewStyle().Bold(true).Foreground(colorHeading),
	Smallest: lipgloss.NewStyle().Foreground(colorSmallest),
	Other:    lipgloss.NewStyle().Bold(true),
	Pole:     lipgloss.NewStyle().Foreground(colorMast),
	Muted:    lipgloss.NewStyle().Foreground(colorGround),
}
