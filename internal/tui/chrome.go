package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/waypoint/internal/tour"
)

// tourChrome frames the highlighted pane and attaches the step callout below it.
func tourChrome[K comparable](width int) tour.Chrome[K] {
	return func(payload string, d tour.Decision[K]) string {
		hints := []string{"[n] next"}
		if d.IsLast {
			hints[0] = "[n] finish"
		}
		if d.HasPrevious {
			hints = append([]string{"[p] back"}, hints...)
		}
		hints = append(hints, "[esc] close")

		callout := lipgloss.JoinVertical(lipgloss.Left,
			calloutTitleStyle.Render(d.Step.Title),
			calloutBodyStyle.Width(max(10, width-6)).Render(d.Step.Description),
			calloutMetaStyle.Render(fmt.Sprintf("Step %d of %d   %s", d.Index+1, d.Total, strings.Join(hints, "  "))),
		)
		return tourFrameStyle.Render(lipgloss.JoinVertical(lipgloss.Left, payload, callout))
	}
}
