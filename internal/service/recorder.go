package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jask/waypoint/internal/catalog"
	"github.com/jask/waypoint/internal/database"
	"github.com/jask/waypoint/internal/database/repository"
	"github.com/jask/waypoint/internal/tour"
)

// Event is a tour progress change in key-agnostic form.
type Event struct {
	Tour    string
	Outcome tour.Outcome
	Step    string
	At      time.Time
}

// Recorder persists tour runs and completion state.
type Recorder struct {
	Runs     *repository.RunRepo
	Progress *repository.ProgressRepo
	Logger   *zap.Logger
	// NewID generates run ids; uuid.NewString when nil.
	NewID func() string

	mu   sync.Mutex
	open map[string]*openRun // by tour
}

type openRun struct {
	id   string
	step string
}

func (r *Recorder) logger() *zap.Logger {
	if r.Logger == nil {
		return zap.NewNop()
	}
	return r.Logger
}

func (r *Recorder) newID() string {
	if r.NewID != nil {
		return r.NewID()
	}
	return uuid.NewString()
}

// Record persists e. Outcomes other than started, moved, completed and dismissed are ignored.
func (r *Recorder) Record(ctx context.Context, e Event) error {
	if e.At.IsZero() {
		e.At = database.Now()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.open == nil {
		r.open = make(map[string]*openRun)
	}

	log := r.logger().With(zap.String("tour", e.Tour), zap.String("step", e.Step))
	switch e.Outcome {
	case tour.OutcomeStarted:
		if prev, ok := r.open[e.Tour]; ok {
			// a restart while a run is open closes the old run first
			if err := r.Runs.Finish(ctx, prev.id, repository.EventDismissed, prev.step, e.At); err != nil {
				return fmt.Errorf("close run %s: %w", prev.id, err)
			}
			delete(r.open, e.Tour)
		}
		id := r.newID()
		if err := r.Runs.Start(ctx, repository.Run{ID: id, TourName: e.Tour, FirstStep: e.Step, StartedAt: e.At}); err != nil {
			return fmt.Errorf("start run: %w", err)
		}
		r.open[e.Tour] = &openRun{id: id, step: e.Step}
		log.Info("tour started", zap.String("run", id))
	case tour.OutcomeMoved:
		run, ok := r.open[e.Tour]
		if !ok {
			log.Warn("step viewed without an open run")
			return nil
		}
		if err := r.Runs.AddEvent(ctx, repository.Event{RunID: run.id, Kind: repository.EventViewed, Step: e.Step, CreatedAt: e.At}); err != nil {
			return fmt.Errorf("record step: %w", err)
		}
		run.step = e.Step
		log.Debug("tour step viewed", zap.String("run", run.id))
	case tour.OutcomeCompleted, tour.OutcomeDismissed:
		status := repository.StatusDismissed
		if e.Outcome == tour.OutcomeCompleted {
			status = repository.StatusCompleted
		}
		if run, ok := r.open[e.Tour]; ok {
			if err := r.Runs.AddEvent(ctx, repository.Event{RunID: run.id, Kind: status, Step: e.Step, CreatedAt: e.At}); err != nil {
				return fmt.Errorf("record end: %w", err)
			}
			if err := r.Runs.Finish(ctx, run.id, status, e.Step, e.At); err != nil {
				return fmt.Errorf("finish run: %w", err)
			}
			delete(r.open, e.Tour)
		}
		if err := r.Progress.Upsert(ctx, repository.Progress{TourName: e.Tour, Status: status, LastStep: e.Step}); err != nil {
			return fmt.Errorf("save progress: %w", err)
		}
		log.Info("tour ended", zap.String("status", status))
	}
	return nil
}

// Abandon closes every open run as abandoned. Progress is left alone, so the tours are offered
// again. Call it when the hosting UI exits mid-run.
func (r *Recorder) Abandon(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	at := database.Now()
	var errs []error
	for tourName, run := range r.open {
		err := r.Runs.AddEvent(ctx, repository.Event{RunID: run.id, Kind: repository.EventAbandoned, Step: run.step, CreatedAt: at})
		if err == nil {
			err = r.Runs.Finish(ctx, run.id, repository.EventAbandoned, run.step, at)
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("abandon run %s: %w", run.id, err))
			continue
		}
		delete(r.open, tourName)
		r.logger().Info("tour abandoned", zap.String("tour", tourName), zap.String("run", run.id), zap.String("step", run.step))
	}
	return errors.Join(errs...)
}

// EventFor converts a transition into a recorder event. ok is false for transitions that carry
// no progress.
func EventFor[K comparable](tourName string, t tour.Transition[K]) (Event, bool) {
	switch o := t.Outcome(); o {
	case tour.OutcomeStarted, tour.OutcomeMoved, tour.OutcomeCompleted, tour.OutcomeDismissed:
		step, _ := t.Step()
		return Event{Tour: tourName, Outcome: o, Step: catalog.KeyString(step.ID)}, true
	default:
		return Event{}, false
	}
}

// Track returns a listener that records every progress transition of tourName. Errors go to
// onErr when it is set, otherwise they are logged.
func Track[K comparable](ctx context.Context, r *Recorder, tourName string, onErr func(error)) tour.Listener[K] {
	return func(t tour.Transition[K]) {
		e, ok := EventFor(tourName, t)
		if !ok {
			return
		}
		if err := r.Record(ctx, e); err != nil {
			if onErr != nil {
				onErr(err)
				return
			}
			r.logger().Warn("record tour event", zap.String("tour", tourName), zap.Error(err))
		}
	}
}
