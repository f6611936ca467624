package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/brickbreak/internal/config"
	"github.com/vovakirdan/brickbreak/internal/core"
)

// Palette maps color roles to lipgloss styles.
type Palette map[core.Color]lipgloss.Style

// NewPalette builds the palette for a render configuration. Game objects
// use the configured hex color; the terminal background is left alone.
func NewPalette(cfg config.RenderConfig) Palette {
	return Palette{
		core.ColorDefault: lipgloss.NewStyle(),
		core.ColorObject:  lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Color)),
		core.ColorFrame:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		core.ColorText:    lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
		core.ColorDim:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// Style returns the style for a role, falling back to the default.
func (p Palette) Style(c core.Color) lipgloss.Style {
	if style, ok := p[c]; ok {
		return style
	}
	return p[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, p Palette) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(p.Style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
