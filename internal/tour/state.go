package tour

// State is an immutable snapshot of one tour. The zero value is an empty, unavailable tour.
type State[K comparable] struct {
	ids       []K
	registry  Registry[K]
	current   *Step[K]
	available bool
	complete  bool
}

// NewState declares a tour over ids. The order of ids is the navigation order.
func NewState[K comparable](ids []K, available bool) State[K] {
	own := make([]K, len(ids))
	copy(own, ids)
	return State[K]{ids: own, registry: newRegistry(own), available: available}
}

// IDs returns the declared step keys in navigation order.
func (s State[K]) IDs() []K {
	out := make([]K, len(s.ids))
	copy(out, s.ids)
	return out
}

// Registry returns a copy of the step registry.
func (s State[K]) Registry() Registry[K] {
	return s.registry.clone()
}

// Current returns the active step, if any.
func (s State[K]) Current() (Step[K], bool) {
	if s.current == nil {
		return Step[K]{}, false
	}
	return *s.current, true
}

func (s State[K]) IsAvailable() bool { return s.available }

// IsRegistered reports whether every declared step has a mounted anchor.
func (s State[K]) IsRegistered() bool { return s.registry.Covers(s.ids) }

func (s State[K]) IsActive() bool { return s.current != nil }

// IsComplete reports whether the last run ended, either past the final step or via EndTour.
func (s State[K]) IsComplete() bool { return s.complete }

// IndexOf returns the position of id in the declared order, or -1.
func (s State[K]) IndexOf(id K) int {
	for i, v := range s.ids {
		if v == id {
			return i
		}
	}
	return -1
}

// Position returns the index of the current step and the number of steps. The index is -1
// when no step is current.
func (s State[K]) Position() (int, int) {
	if s.current == nil {
		return -1, len(s.ids)
	}
	return s.IndexOf(s.current.ID), len(s.ids)
}

// Phase names the conceptual state the tour is in.
type Phase string

const (
	PhaseUnavailable   Phase = "unavailable"
	PhaseNotRegistered Phase = "not_registered"
	PhaseIdle          Phase = "idle"
	PhaseActive        Phase = "active"
	PhaseComplete      Phase = "complete"
)

func (s State[K]) Phase() Phase {
	switch {
	case s.IsActive():
		return PhaseActive
	case s.complete:
		return PhaseComplete
	case !s.available:
		return PhaseUnavailable
	case !s.IsRegistered():
		return PhaseNotRegistered
	default:
		return PhaseIdle
	}
}
