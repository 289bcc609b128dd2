// internal/tui/theme.go
//
// lipgloss styles; tile and key colours follow the mark.

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/wordle/apps/solo/internal/game"
)

var (
	Green  = lipgloss.Color("#6aaa64")
	Yellow = lipgloss.Color("#c9b458")
	Gray   = lipgloss.Color("#787c7e")
	Light  = lipgloss.Color("#d3d6da")
	White  = lipgloss.Color("#ffffff")
	Ink    = lipgloss.Color("#1a1a1b")
	Red    = lipgloss.Color("#e05252")

	tile = lipgloss.NewStyle().
		Width(3).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(White)

	tileEmpty = tile.Foreground(Ink).Background(Light)

	key = lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(Ink).
		Background(Light)

	Title  = lipgloss.NewStyle().Foreground(Ink).Bold(true).Underline(true)
	Notice = lipgloss.NewStyle().Foreground(White).Background(Ink).Padding(0, 1)
	Button = lipgloss.NewStyle().Foreground(White).Background(Green).Bold(true).Padding(0, 1)
	Muted  = lipgloss.NewStyle().Foreground(Gray)

	Overlay = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Gray).
		Padding(1, 2)

	Bar     = lipgloss.NewStyle().Foreground(White).Background(Gray)
	BarLast = Bar.Background(Green)
	Close   = lipgloss.NewStyle().Foreground(Red).Bold(true)
)

// markColor is the background of a finalized tile or key.
func markColor(m game.Mark) lipgloss.Color {
	switch m {
	case game.MarkHit:
		return Green
	case game.MarkPresent:
		return Yellow
	case game.MarkMiss:
		return Gray
	}
	return Light
}

func tileStyle(c game.Cell) lipgloss.Style {
	if c.Mark == game.MarkUnset {
		return tileEmpty
	}
	return tile.Background(markColor(c.Mark))
}

func keyStyle(m game.Mark) lipgloss.Style {
	if m == game.MarkUnset {
		return key
	}
	return key.Foreground(White).Background(markColor(m))
}
