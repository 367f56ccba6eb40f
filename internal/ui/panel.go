package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ProgressBar renders a bar of width cells filled to pct (0-100).
func ProgressBar(pct, width int) string {
	if width < 5 {
		width = 5
	}
	pct = max(0, min(pct, 100))
	filled := pct * width / 100
	t := Current()
	bar := strings.Repeat(t.BarFull, filled) + strings.Repeat(t.BarEmpty, width-filled)
	return fmt.Sprintf("%s %3d%%", bar, pct)
}

// Panel frames lines with the current theme's border.
func Panel(lines ...string) string {
	t := Current()
	return lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

// Row renders one list line: checkbox, quantity, name, struck through when
// checked.
func Row(quantity int, name string, checked bool) string {
	t := Current()
	text := fmt.Sprintf("%d %s", quantity, name)
	if checked {
		return t.Success.Render(t.BoxChecked) + " " + t.Done.Render(text)
	}
	return t.Muted.Render(t.BoxUnchecked) + " " + text
}
