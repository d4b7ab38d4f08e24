// Package style provides shared colours, icons and lipgloss styles for the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Blue   = lipgloss.Color("#3B82F6")
	Cyan   = lipgloss.Color("#06B6D4")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Update  = "⚠"
	Unknown = "?"
	Arrow   = "→"
	Bullet  = "•"
)

// Styles built from the palette.
var (
	Header   = lipgloss.NewStyle().Bold(true).Foreground(Iris)
	Heading  = lipgloss.NewStyle().Bold(true).Foreground(Cyan)
	Info     = lipgloss.NewStyle().Foreground(Blue)
	Muted    = lipgloss.NewStyle().Foreground(Slate)
	Equal    = lipgloss.NewStyle().Foreground(Green)
	Outdated = lipgloss.NewStyle().Bold(true).Foreground(Red)
	Latest   = lipgloss.NewStyle().Bold(true).Foreground(Green)
	Pending  = lipgloss.NewStyle().Foreground(Yellow)
)
