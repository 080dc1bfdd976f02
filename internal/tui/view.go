package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/jask/waypoint/internal/catalog"
	"github.com/jask/waypoint/internal/tour"
)

// guide is one tour-consuming view, independent of its step key type.
type guide interface {
	Name() string
	Title() string
	MountCmd(delay time.Duration) tea.Cmd
	Mount(index int)
	SetAvailable(available bool)
	Start()
	Next()
	Previous()
	End()
	Jump(index int)
	// DeepLink starts the tour at key once it is registered.
	DeepLink(key string) error
	// Settle runs the deferred start once the tour is registered and available.
	Settle(autostart bool) bool
	Phase() tour.Phase
	// Gate reports what blocks a user-initiated start: PhaseUnavailable, PhaseNotRegistered, or
	// PhaseIdle when nothing does.
	Gate() tour.Phase
	Position() (int, int)
	Render(width int) string
}

type panel[K comparable] struct {
	anchor  *tour.Anchor[K]
	title   string
	body    string
	mounted bool
}

type guidedView[K comparable] struct {
	def      catalog.Definition[K]
	provider *tour.Provider[K]
	panels   []*panel[K]
	// mount order differs from step order to show registration is order independent
	mountOrder  []int
	deepLink    *K
	autostarted bool
}

type panelContent struct {
	title string
	body  string
}

func newGuidedView[K comparable](def catalog.Definition[K], content map[K]panelContent, mountOrder []int, logger *zap.Logger, listeners ...tour.Listener[K]) *guidedView[K] {
	opts := []tour.Option[K]{tour.WithLogger[K](logger.With(zap.String("tour", def.Name)))}
	for _, l := range listeners {
		opts = append(opts, tour.WithListener(l))
	}
	v := &guidedView[K]{def: def, provider: tour.NewProvider(def.IDs(), opts...), mountOrder: mountOrder}
	for _, step := range def.Steps {
		c := content[step.ID]
		v.panels = append(v.panels, &panel[K]{anchor: tour.NewAnchor(v.provider, step), title: c.title, body: c.body})
	}
	if len(v.mountOrder) != len(v.panels) {
		v.mountOrder = make([]int, len(v.panels))
		for i := range v.mountOrder {
			v.mountOrder[i] = i
		}
	}
	return v
}

func (v *guidedView[K]) Name() string  { return v.def.Name }
func (v *guidedView[K]) Title() string { return v.def.Title }

// MountCmd schedules every panel to mount, one per delay tick.
func (v *guidedView[K]) MountCmd(delay time.Duration) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(v.mountOrder))
	for n, idx := range v.mountOrder {
		name, idx := v.def.Name, idx
		cmds = append(cmds, tea.Tick(delay*time.Duration(n+1), func(time.Time) tea.Msg {
			return mountMsg{view: name, index: idx}
		}))
	}
	return tea.Batch(cmds...)
}

func (v *guidedView[K]) Mount(index int) {
	if index < 0 || index >= len(v.panels) || v.panels[index].mounted {
		return
	}
	v.panels[index].mounted = true
	v.panels[index].anchor.Mount()
}

func (v *guidedView[K]) SetAvailable(available bool) { v.provider.SetAvailable(available) }
func (v *guidedView[K]) Start()                      { v.provider.Start() }
func (v *guidedView[K]) Next()                       { v.provider.Next() }
func (v *guidedView[K]) Previous()                   { v.provider.Previous() }
func (v *guidedView[K]) End()                        { v.provider.End() }

func (v *guidedView[K]) Jump(index int) {
	ids := v.def.IDs()
	if index < 0 || index >= len(ids) {
		return
	}
	v.provider.Jump(ids[index])
}

func (v *guidedView[K]) DeepLink(key string) error {
	e := v.def.Entry()
	idx, err := e.StepIndex(key)
	if err != nil {
		return fmt.Errorf("%s: %w", v.def.Name, err)
	}
	id := v.def.IDs()[idx]
	v.deepLink = &id
	return nil
}

func (v *guidedView[K]) Settle(autostart bool) bool {
	s := v.provider.State()
	if !s.IsAvailable() || !s.IsRegistered() || s.IsActive() {
		return false
	}
	if v.deepLink != nil {
		v.provider.StartAt(*v.deepLink)
		v.deepLink = nil
		v.autostarted = true
		return true
	}
	if autostart && !v.autostarted && !s.IsComplete() {
		v.autostarted = true
		v.provider.Start()
		return true
	}
	return false
}

func (v *guidedView[K]) Phase() tour.Phase { return v.provider.State().Phase() }

func (v *guidedView[K]) Gate() tour.Phase {
	s := v.provider.State()
	switch {
	case !s.IsAvailable():
		return tour.PhaseUnavailable
	case !s.IsRegistered():
		return tour.PhaseNotRegistered
	default:
		return tour.PhaseIdle
	}
}

func (v *guidedView[K]) Position() (int, int) { return v.provider.State().Position() }

func (v *guidedView[K]) Render(width int) string {
	chrome := tourChrome[K](width)
	rows := make([]string, 0, len(v.panels))
	for _, p := range v.panels {
		if !p.mounted {
			rows = append(rows, renderPlaceholder(p.title, width))
			continue
		}
		rows = append(rows, p.anchor.Render(renderPane(p.title, p.body, width-2), chrome))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func newIssueView(logger *zap.Logger, listeners ...tour.Listener[catalog.IssueStep]) *guidedView[catalog.IssueStep] {
	content := map[catalog.IssueStep]panelContent{
		catalog.IssueStepAggregates: {
			title: "TypeError: Cannot read properties of undefined (reading 'id')",
			body:  "events 1,284   users 312   first seen 3d ago   last seen 2m ago",
		},
		catalog.IssueStepFilters: {
			title: "Filters",
			body:  "environment: production   release: web@24.10.1   period: 14d",
		},
		catalog.IssueStepEventNavigation: {
			title: "Event 7f3c1e",
			body:  "‹ oldest   ‹ previous   recommended   next ›   latest ›",
		},
		catalog.IssueStepStackTrace: {
			title: "Stack trace",
			body: strings.Join([]string{
				"app/components/issueList.tsx in renderRow at line 88",
				"app/components/issueList.tsx in map at line 61",
				"react-dom/client.js in commitRoot (3 frames hidden)",
			}, "\n"),
		},
		catalog.IssueStepBreadcrumbs: {
			title: "Breadcrumbs",
			body: strings.Join([]string{
				"12:01:07  navigation  /issues/ -> /issues/4821/",
				"12:01:08  xhr         GET /api/0/issues/4821/ [200]",
				"12:01:09  error       TypeError",
			}, "\n"),
		},
	}
	// breadcrumbs are a lazy panel and mount last
	order := []int{0, 2, 1, 3, 4}
	return newGuidedView(catalog.IssueDetails, content, order, logger, listeners...)
}

func newReplayView(logger *zap.Logger, listeners ...tour.Listener[catalog.ReplayStep]) *guidedView[catalog.ReplayStep] {
	content := map[catalog.ReplayStep]panelContent{
		catalog.ReplayStepPlayer:      {title: "Replay 9a41d2", body: "▶ 00:42 / 03:17   1x   skip inactivity: on"},
		catalog.ReplayStepTimeline:    {title: "Timeline", body: "──●────✕──●●─────────●──  (3 clicks, 1 error, 1 navigation)"},
		catalog.ReplayStepBreadcrumbs: {title: "Breadcrumbs", body: "00:12 click button#save\n00:40 navigation /settings/\n00:42 error TypeError"},
		catalog.ReplayStepConsole:     {title: "Console", body: "warn  Deprecated prop `size`\nerror Cannot read properties of undefined"},
	}
	return newGuidedView(catalog.Replay, content, []int{3, 0, 1, 2}, logger, listeners...)
}
