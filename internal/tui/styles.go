// Package tui provides the Bubble Tea front ends for the calculators.
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Theme carries the user-tunable look of the calculators.
type Theme struct {
	Accent lipgloss.Color
	Width  int
}

// DefaultTheme matches the template written by `awsomemath config`.
func DefaultTheme() Theme {
	return Theme{Accent: lipgloss.Color("#C89A3A"), Width: 24}
}

func (t Theme) displayWidth() int {
	if t.Width < 8 {
		return 8
	}
	return t.Width
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F0F0F0"))
	historyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	panelStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C")).Width(8)
	selectStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	noticeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
)

func (t Theme) resultStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
}

// alignRight pads s on the left to width cells. Wider text keeps its
// rightmost cells behind an ellipsis.
func alignRight(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w <= width {
		return strings.Repeat(" ", width-w) + s
	}
	if width <= 0 {
		return ""
	}

	runes := []rune(s)
	kept := 0
	start := len(runes)
	for start > 0 {
		rw := runewidth.RuneWidth(runes[start-1])
		if kept+rw > width-1 {
			break
		}
		kept += rw
		start--
	}
	tail := "…" + string(runes[start:])
	return strings.Repeat(" ", width-runewidth.StringWidth(tail)) + tail
}
