package tour

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newProvider(t *testing.T, opts ...Option[string]) *Provider[string] {
	t.Helper()
	p := NewProvider([]string{"A", "B", "C"}, opts...)
	for _, step := range steps("A", "B", "C") {
		p.Register(step)
	}
	return p
}

func TestProviderTriple(t *testing.T) {
	p := newProvider(t, WithAvailable[string](true))
	require.True(t, p.State().IsRegistered())
	require.Len(t, p.Registry(), 3)

	p.Start()
	require.Equal(t, "A", currentID(t, p.State()))
	p.Next()
	p.Next()
	require.Equal(t, "C", currentID(t, p.State()))
	p.Previous()
	require.Equal(t, "B", currentID(t, p.State()))
	p.End()
	require.False(t, p.State().IsActive())
}

func TestProviderRegistryIsACopy(t *testing.T) {
	p := newProvider(t)
	reg := p.Registry()
	delete(reg, "A")
	require.True(t, p.State().IsRegistered())
}

func TestProviderJump(t *testing.T) {
	p := newProvider(t)
	p.Jump("C")
	require.Equal(t, "C", currentID(t, p.State()))

	before := p.State()
	p.Jump("nope")
	requireSame(t, before, p.State())
}

func TestProviderStartAt(t *testing.T) {
	p := newProvider(t, WithAvailable[string](true))
	p.StartAt("B")
	require.Equal(t, "B", currentID(t, p.State()))
}

func TestProviderNotifiesInDispatchOrder(t *testing.T) {
	var kinds []Kind
	p := newProvider(t, WithAvailable[string](true))
	p.Subscribe(func(tr Transition[string]) {
		kinds = append(kinds, tr.Action.Kind())
		if tr.Outcome() == OutcomeStarted {
			// Re-entrant dispatch is queued behind the current action.
			p.Next()
			require.Equal(t, "A", currentID(t, tr.Next))
		}
	})
	p.Start()
	require.Equal(t, []Kind{KindStartTour, KindNextStep}, kinds)
	require.Equal(t, "B", currentID(t, p.State()))
}

func TestProviderUnsubscribe(t *testing.T) {
	calls := 0
	p := newProvider(t)
	stop := p.Subscribe(func(Transition[string]) { calls++ })
	p.SetAvailable(true)
	stop()
	p.Start()
	require.Equal(t, 1, calls)
}

func TestProviderLogsTransitions(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	p := newProvider(t, WithAvailable[string](true), WithLogger[string](zap.New(core)))
	p.Start()

	entries := logs.FilterMessage("tour transition").All()
	require.NotEmpty(t, entries)
	last := entries[len(entries)-1].ContextMap()
	require.Equal(t, "START_TOUR", last["action"])
	require.Equal(t, "idle", last["from"])
	require.Equal(t, "active", last["to"])
	require.Equal(t, "A", last["step"])
}

func TestProviderSkipsLoggingRepeatedRegistration(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	p := NewProvider([]string{"A", "B"}, WithLogger[string](zap.New(core)))
	a := Step[string]{ID: "A", Title: "a"}

	p.Register(a)
	p.Register(a)
	p.Register(a)
	require.Len(t, logs.FilterField(zap.String("action", "REGISTER_STEP")).All(), 1)

	// changed content is a real update
	p.Register(Step[string]{ID: "A", Title: "a2"})
	require.Len(t, logs.FilterField(zap.String("action", "REGISTER_STEP")).All(), 2)

	// listeners still see every dispatch
	var seen int
	p.Subscribe(func(Transition[string]) { seen++ })
	p.Register(Step[string]{ID: "A", Title: "a2"})
	require.Equal(t, 1, seen)
}

func TestTransitionOutcomes(t *testing.T) {
	var outcomes []Outcome
	p := NewProvider([]string{"A", "B"}, WithAvailable[string](true), WithListener(func(tr Transition[string]) {
		if o := tr.Outcome(); o != OutcomeNone {
			outcomes = append(outcomes, o)
		}
	}))
	for _, s := range steps("A", "B") {
		p.Register(s)
	}
	p.Start()
	p.Next()
	p.Next()
	p.Start()
	p.End()

	require.Equal(t, []Outcome{
		OutcomeRegistered,
		OutcomeStarted,
		OutcomeMoved,
		OutcomeCompleted,
		OutcomeStarted,
		OutcomeDismissed,
	}, outcomes)
}

func TestTransitionStepOnEnd(t *testing.T) {
	var last Transition[string]
	p := newProvider(t, WithAvailable[string](true))
	p.Subscribe(func(tr Transition[string]) { last = tr })
	p.StartAt("B")
	p.End()
	step, ok := last.Step()
	require.True(t, ok)
	require.Equal(t, "B", step.ID)
}
