package tour

// Transition is what a Provider reports to listeners after applying one action.
type Transition[K comparable] struct {
	Action Action[K]
	Prev   State[K]
	Next   State[K]
}

// Outcome classifies a transition for observers that only care about tour progress.
type Outcome string

const (
	OutcomeNone       Outcome = ""
	OutcomeRegistered Outcome = "registered"
	OutcomeStarted    Outcome = "started"
	OutcomeMoved      Outcome = "moved"
	OutcomeCompleted  Outcome = "completed"
	OutcomeDismissed  Outcome = "dismissed"
)

func (t Transition[K]) Outcome() Outcome {
	prevStep, wasActive := t.Prev.Current()
	nextStep, isActive := t.Next.Current()
	switch {
	case !wasActive && isActive:
		return OutcomeStarted
	case wasActive && isActive && prevStep.ID != nextStep.ID:
		return OutcomeMoved
	case wasActive && !isActive:
		if _, ok := t.Action.(NextStep[K]); ok {
			return OutcomeCompleted
		}
		return OutcomeDismissed
	case !t.Prev.IsRegistered() && t.Next.IsRegistered():
		return OutcomeRegistered
	default:
		return OutcomeNone
	}
}

// Step returns the step the outcome refers to: the new current step, or for an ended run the
// step it ended on.
func (t Transition[K]) Step() (Step[K], bool) {
	if s, ok := t.Next.Current(); ok {
		return s, true
	}
	return t.Prev.Current()
}
