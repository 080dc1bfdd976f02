package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"go.uber.org/zap"

	"github.com/jask/waypoint/internal/catalog"
	"github.com/jask/waypoint/internal/service"
	"github.com/jask/waypoint/internal/tour"
)

// App ties together the guided views.
type App struct {
	ctx       context.Context
	services  Services
	opts      Options
	logger    *zap.Logger
	guides    []guide
	active    int
	width     int
	height    int
	status    string
	statusErr bool
	keys      keyMap
	help      help.Model
	// linked is the deep-linked tour, which skips the eligibility check
	linked string
	// recordFailed is set when persisting a transition failed during the current message
	recordFailed bool
}

type Services struct {
	Eligibility *service.Eligibility
	Recorder    *service.Recorder
}

// Options controls startup behaviour.
type Options struct {
	Autostart  bool
	MountDelay time.Duration
	// Tour and Step deep link into a tour. Step may be empty to start at the first step.
	Tour string
	Step string
}

type mountMsg struct {
	view  string
	index int
}

type availabilityMsg struct {
	view      string
	available bool
	err       error
}

func New(ctx context.Context, services Services, logger *zap.Logger, opts Options) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &App{
		ctx:      ctx,
		services: services,
		opts:     opts,
		logger:   logger,
		keys:     defaultKeyMap(),
		help:     help.New(),
		status:   "Ready",
		width:    100,
		height:   40,
	}

	var issueListeners []tour.Listener[catalog.IssueStep]
	var replayListeners []tour.Listener[catalog.ReplayStep]
	if services.Recorder != nil {
		issueListeners = append(issueListeners, service.Track[catalog.IssueStep](ctx, services.Recorder, catalog.IssueDetailsTour, a.recordErr))
		replayListeners = append(replayListeners, service.Track[catalog.ReplayStep](ctx, services.Recorder, catalog.ReplayTour, a.recordErr))
	}
	a.guides = []guide{
		newIssueView(logger, issueListeners...),
		newReplayView(logger, replayListeners...),
	}

	if opts.Tour != "" {
		e, err := catalog.Lookup(opts.Tour)
		if err != nil {
			return nil, err
		}
		idx := a.guideIndex(e.Name)
		g := a.guides[idx]
		step := opts.Step
		if step == "" {
			step = e.Steps[0].Key
		}
		if err := g.DeepLink(step); err != nil {
			return nil, err
		}
		// an explicit request overrides the eligibility check
		g.SetAvailable(true)
		a.active = idx
		a.linked = e.Name
	}
	return a, nil
}

func (a *App) Init() tea.Cmd {
	delay := a.opts.MountDelay
	if delay <= 0 {
		delay = time.Millisecond
	}
	cmds := make([]tea.Cmd, 0, 2*len(a.guides))
	for _, g := range a.guides {
		cmds = append(cmds, g.MountCmd(delay))
		if g.Name() != a.linked {
			cmds = append(cmds, a.loadAvailability(g.Name()))
		}
	}
	return tea.Batch(cmds...)
}

func (a *App) loadAvailability(name string) tea.Cmd {
	return func() tea.Msg {
		if a.services.Eligibility == nil {
			return availabilityMsg{view: name, available: true}
		}
		ok, err := a.services.Eligibility.Available(a.ctx, name)
		return availabilityMsg{view: name, available: ok, err: err}
	}
}

func (a *App) recordErr(err error) {
	a.recordFailed = true
	a.status = "error: " + err.Error()
	a.statusErr = true
	a.logger.Warn("record tour event", zap.Error(err))
}

func (a *App) setStatus(s string) {
	a.status = s
	a.statusErr = false
}

// note sets a status that follows a tour transition unless recording it failed.
func (a *App) note(s string) {
	if !a.recordFailed {
		a.setStatus(s)
	}
}

// startable reports whether a user may start or jump within g, explaining in the status line
// when not.
func (a *App) startable(g guide) bool {
	switch g.Gate() {
	case tour.PhaseUnavailable:
		a.setStatus("Tour unavailable: already seen or disabled (waypoint tours reset " + g.Name() + ")")
		return false
	case tour.PhaseNotRegistered:
		a.setStatus("Waiting for panels to load")
		return false
	default:
		return true
	}
}

// abandon closes runs left open by quitting mid-tour.
func (a *App) abandon() {
	if a.services.Recorder == nil {
		return
	}
	if err := a.services.Recorder.Abandon(a.ctx); err != nil {
		a.logger.Warn("abandon open tour runs", zap.Error(err))
	}
}

func (a *App) guideIndex(name string) int {
	for i, g := range a.guides {
		if g.Name() == name {
			return i
		}
	}
	return -1
}

func (a *App) current() guide { return a.guides[a.active] }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	a.recordFailed = false
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.help.Width = m.Width
	case mountMsg:
		if idx := a.guideIndex(m.view); idx >= 0 {
			a.guides[idx].Mount(m.index)
			a.settle(a.guides[idx])
		}
	case availabilityMsg:
		if m.err != nil {
			a.status = "error: " + m.err.Error()
			a.statusErr = true
			a.logger.Warn("eligibility check failed", zap.String("tour", m.view), zap.Error(m.err))
			return a, nil
		}
		if idx := a.guideIndex(m.view); idx >= 0 {
			a.guides[idx].SetAvailable(m.available)
			a.settle(a.guides[idx])
		}
	case tea.KeyMsg:
		return a.handleKey(m)
	}
	return a, nil
}

func (a *App) settle(g guide) {
	if g.Settle(a.opts.Autostart) {
		a.note("Tour started: " + g.Title())
	}
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	g := a.current()
	switch {
	case key.Matches(m, a.keys.Quit):
		a.abandon()
		return a, tea.Quit
	case key.Matches(m, a.keys.Help):
		a.help.ShowAll = !a.help.ShowAll
	case key.Matches(m, a.keys.Switch):
		a.active = (a.active + 1) % len(a.guides)
		a.setStatus("Viewing " + a.current().Title())
	case key.Matches(m, a.keys.Start):
		if a.startable(g) {
			g.Start()
			if g.Phase() == tour.PhaseActive {
				a.note("Tour started: " + g.Title())
			}
		}
	case key.Matches(m, a.keys.Next):
		g.Next()
		if g.Phase() == tour.PhaseComplete {
			a.note("Tour complete")
		}
	case key.Matches(m, a.keys.Previous):
		g.Previous()
	case key.Matches(m, a.keys.End):
		if g.Phase() == tour.PhaseActive {
			g.End()
			a.note("Tour closed")
		}
	case key.Matches(m, a.keys.Jump):
		if a.startable(g) {
			g.Jump(int(m.String()[0] - '1'))
		}
	}
	return a, nil
}

func (a *App) View() string {
	header := a.renderHeader()
	body := a.current().Render(a.width)
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		body,
		a.renderStatus(),
		footerStyle.Width(a.width).Render(a.help.View(a.keys)),
	)
}

func (a *App) renderHeader() string {
	parts := []string{headerAppStyle.Render("waypoint")}
	for i, g := range a.guides {
		style := inactiveTabStyle
		if i == a.active {
			style = activeTabStyle
		}
		parts = append(parts, style.Render(g.Title()))
	}
	phase := strings.ReplaceAll(string(a.current().Phase()), "_", " ")
	if idx, total := a.current().Position(); idx >= 0 {
		phase = fmt.Sprintf("%s %d/%d", phase, idx+1, total)
	}
	parts = append(parts, phaseStyle.Render(" tour: "+phase))
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (a *App) renderStatus() string {
	msg := strings.TrimSpace(a.status)
	if msg == "" {
		msg = "Ready"
	}
	msg = ansi.Truncate(strings.ReplaceAll(msg, "\n", " "), max(1, a.width), "")
	style := statusBarStyle
	if a.statusErr {
		style = statusErrBarStyle
	}
	return style.Width(max(1, a.width)).Render(msg)
}
