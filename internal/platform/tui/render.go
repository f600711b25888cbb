package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// cellWidth is how many terminal columns one grid cell takes; two columns
// make cells roughly square.
const cellWidth = 2

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	gameOverStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	pausedStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*cellWidth*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			hex := s.Get(x, y).Color.Hex()
			n := 0
			for x < s.Width() && s.Get(x, y).Color.Hex() == hex {
				n++
				x++
			}

			style := lipgloss.NewStyle().Background(lipgloss.Color(hex))
			sb.WriteString(style.Render(strings.Repeat(" ", n*cellWidth)))
		}
	}
	return sb.String()
}
