package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// renderPane draws a bordered pane. width is the outer width.
func renderPane(title, content string, width int) string {
	if width < 8 {
		width = 8
	}
	inner := width - 4 // border + padding
	lines := []string{paneTitleStyle.Render(ansi.Truncate(title, inner, "…"))}
	for _, l := range strings.Split(content, "\n") {
		lines = append(lines, ansi.Truncate(l, inner, "…"))
	}
	return paneStyle.Width(width - 2).Render(strings.Join(lines, "\n"))
}

func renderPlaceholder(title string, width int) string {
	return renderPane(title, placeholderStyle.Render("loading…"), width)
}
