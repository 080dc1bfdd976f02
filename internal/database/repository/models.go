package repository

import "time"

// Tour represents a declared tour row.
type Tour struct {
	ID        string
	Name      string
	Title     string
	StepCount int
	UpdatedAt time.Time
}

// Progress statuses. A tour with no progress row has never been finished or dismissed.
const (
	StatusCompleted = "completed"
	StatusDismissed = "dismissed"
)

// Progress represents how far a user got with a tour.
type Progress struct {
	TourName  string
	Status    string
	LastStep  string
	Runs      int
	UpdatedAt time.Time
}

// Run represents one start-to-end pass through a tour.
type Run struct {
	ID        string
	TourName  string
	FirstStep string
	LastStep  string
	Outcome   *string
	StartedAt time.Time
	EndedAt   *time.Time
}

// Event kinds recorded against a run.
const (
	EventStarted   = "started"
	EventViewed    = "viewed"
	EventCompleted = "completed"
	EventDismissed = "dismissed"
	// EventAbandoned closes a run that was still open when the UI exited.
	EventAbandoned = "abandoned"
)

// Event represents one step view or lifecycle change within a run.
type Event struct {
	ID        int64
	RunID     string
	Kind      string
	Step      string
	CreatedAt time.Time
}
