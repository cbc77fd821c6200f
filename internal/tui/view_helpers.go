package tui

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

const (
	pageIndent   = 2
	dividerWidth = 54
)

var (
	dividerStyle = lipgloss.NewStyle().Faint(true)
	bodyStyle    = lipgloss.NewStyle().PaddingLeft(pageIndent)
)

// renderPage frames body between two dividers under title. The hot key line
// always ends with the global quit key.
func renderPage(title, body, hotKeys string) string {
	divider := bodyStyle.Render(dividerStyle.Render(strings.Repeat("─", dividerWidth)))

	if strings.TrimSpace(body) == "" {
		body = "-"
	}

	help := "ctrl+c: sair"
	if strings.TrimSpace(hotKeys) != "" {
		help = hotKeys + "\n" + help
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		divider,
		"",
		bodyStyle.Render(body),
		"",
		divider,
		bodyStyle.Render(helpStyle.Render(help)),
	)
}

// fitText truncates v to max runes, marking the cut with "...".
func fitText(v string, max int) string {
	if max <= 0 || utf8.RuneCountInString(v) <= max {
		return v
	}
	r := []rune(v)
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
