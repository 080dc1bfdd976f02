package catalog

import "github.com/jask/waypoint/internal/tour"

const (
	IssueDetailsTour = "issue-details"
	ReplayTour       = "replay"
)

// IssueStep keys the issue details tour.
type IssueStep string

const (
	IssueStepAggregates      IssueStep = "aggregates"
	IssueStepFilters         IssueStep = "filters"
	IssueStepEventNavigation IssueStep = "event-navigation"
	IssueStepStackTrace      IssueStep = "stack-trace"
	IssueStepBreadcrumbs     IssueStep = "breadcrumbs"
)

func (s IssueStep) String() string { return string(s) }

var IssueDetails = Definition[IssueStep]{
	Name:  IssueDetailsTour,
	Title: "Issue details",
	Steps: []tour.Step[IssueStep]{
		{
			ID:          IssueStepAggregates,
			Title:       "Issue overview",
			Description: "Event counts, affected users and the first and last time this issue was seen.",
		},
		{
			ID:          IssueStepFilters,
			Title:       "Narrow it down",
			Description: "Filter events by environment and release to focus on the ones that matter.",
		},
		{
			ID:          IssueStepEventNavigation,
			Title:       "Browse events",
			Description: "Step through recommended, oldest and latest events for this issue.",
		},
		{
			ID:          IssueStepStackTrace,
			Title:       "Stack trace",
			Description: "The frames that led to the error. In-app frames are expanded by default.",
		},
		{
			ID:          IssueStepBreadcrumbs,
			Title:       "Breadcrumbs",
			Description: "The trail of events leading up to the error: requests, queries and logs.",
		},
	},
}

// ReplayStep keys the replay tour.
type ReplayStep int

const (
	ReplayStepPlayer ReplayStep = iota
	ReplayStepTimeline
	ReplayStepBreadcrumbs
	ReplayStepConsole
)

func (s ReplayStep) String() string {
	switch s {
	case ReplayStepPlayer:
		return "player"
	case ReplayStepTimeline:
		return "timeline"
	case ReplayStepBreadcrumbs:
		return "breadcrumbs"
	case ReplayStepConsole:
		return "console"
	default:
		return "unknown"
	}
}

var Replay = Definition[ReplayStep]{
	Name:  ReplayTour,
	Title: "Session replay",
	Steps: []tour.Step[ReplayStep]{
		{ID: ReplayStepPlayer, Title: "Replay player", Description: "Watch what the user saw, with controls for speed and skipping inactivity."},
		{ID: ReplayStepTimeline, Title: "Timeline", Description: "Errors, clicks and navigations plotted over the length of the session."},
		{ID: ReplayStepBreadcrumbs, Title: "Breadcrumbs", Description: "User actions in order. Select one to seek the player to it."},
		{ID: ReplayStepConsole, Title: "Console", Description: "Console output captured during the session, filterable by level."},
	},
}
