package tour

// Kind tags an action for logging and persistence.
type Kind string

const (
	KindRegisterStep    Kind = "REGISTER_STEP"
	KindStartTour       Kind = "START_TOUR"
	KindNextStep        Kind = "NEXT_STEP"
	KindPreviousStep    Kind = "PREVIOUS_STEP"
	KindEndTour         Kind = "END_TOUR"
	KindSetCurrentStep  Kind = "SET_CURRENT_STEP"
	KindSetAvailability Kind = "SET_AVAILABILITY"
)

// Action is the closed set of tour transitions. Only types in this package implement it.
type Action[K comparable] interface {
	Kind() Kind
	sealed()
}

// RegisterStep announces that an anchor for Step has mounted.
type RegisterStep[K comparable] struct {
	Step Step[K]
}

// StartTour begins a run. When HasStep is false, or StepID is not declared, the run starts at
// the first declared step.
type StartTour[K comparable] struct {
	StepID  K
	HasStep bool
}

type NextStep[K comparable] struct{}

type PreviousStep[K comparable] struct{}

type EndTour[K comparable] struct{}

// SetCurrentStep forces the current step, bypassing the start preconditions. Used for deep
// links.
type SetCurrentStep[K comparable] struct {
	Step Step[K]
}

// SetAvailability is dispatched by the eligibility check of the hosting view.
type SetAvailability[K comparable] struct {
	Available bool
}

func (RegisterStep[K]) Kind() Kind    { return KindRegisterStep }
func (StartTour[K]) Kind() Kind       { return KindStartTour }
func (NextStep[K]) Kind() Kind        { return KindNextStep }
func (PreviousStep[K]) Kind() Kind    { return KindPreviousStep }
func (EndTour[K]) Kind() Kind         { return KindEndTour }
func (SetCurrentStep[K]) Kind() Kind  { return KindSetCurrentStep }
func (SetAvailability[K]) Kind() Kind { return KindSetAvailability }

func (RegisterStep[K]) sealed()    {}
func (StartTour[K]) sealed()       {}
func (NextStep[K]) sealed()        {}
func (PreviousStep[K]) sealed()    {}
func (EndTour[K]) sealed()         {}
func (SetCurrentStep[K]) sealed()  {}
func (SetAvailability[K]) sealed() {}
