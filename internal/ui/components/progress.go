package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordguess/internal/ui/theme"
)

// AttemptsBar shows the remaining attempts as a bar that turns red when
// few are left.
type AttemptsBar struct {
	Remaining int
	Total     int
	Width     int
}

func NewAttemptsBar(remaining, total, width int) AttemptsBar {
	return AttemptsBar{Remaining: remaining, Total: total, Width: width}
}

// Low reports whether the player is down to the last quarter of attempts.
func (b AttemptsBar) Low() bool {
	return b.Total > 0 && b.Remaining*4 <= b.Total
}

func (b AttemptsBar) View() string {
	label := fmt.Sprintf("  %d/%d", b.Remaining, b.Total)
	barWidth := max(b.Width-lipgloss.Width(label), 4)

	filled := 0
	if b.Total > 0 {
		filled = barWidth * b.Remaining / b.Total
	}
	filled = min(max(filled, 0), barWidth)

	fill := theme.ProgressFilled
	if b.Low() {
		fill = theme.ProgressLow
	}

	return fill.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled)) +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(label)
}
