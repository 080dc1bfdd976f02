package tour

import (
	"fmt"

	"go.uber.org/zap"
)

// Listener observes every transition a Provider applies, including no-ops.
type Listener[K comparable] func(Transition[K])

// Provider owns the state of one tour instance and serializes dispatch. It is not safe for
// concurrent use; dispatch from the goroutine that owns the view (the bubbletea Update loop).
type Provider[K comparable] struct {
	state     State[K]
	listeners map[int]Listener[K]
	nextID    int
	queue     []Action[K]
	draining  bool
	logger    *zap.Logger
}

type Option[K comparable] func(*Provider[K])

// WithAvailable sets the initial availability of the tour.
func WithAvailable[K comparable](available bool) Option[K] {
	return func(p *Provider[K]) { p.state.available = available }
}

func WithListener[K comparable](l Listener[K]) Option[K] {
	return func(p *Provider[K]) { p.Subscribe(l) }
}

func WithLogger[K comparable](logger *zap.Logger) Option[K] {
	return func(p *Provider[K]) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewProvider declares a tour over the ordered step ids.
func NewProvider[K comparable](ids []K, opts ...Option[K]) *Provider[K] {
	p := &Provider[K]{
		state:     NewState(ids, false),
		listeners: make(map[int]Listener[K]),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Provider[K]) State() State[K] { return p.state }

func (p *Provider[K]) Registry() Registry[K] { return p.state.Registry() }

// Subscribe registers l and returns a function that removes it.
func (p *Provider[K]) Subscribe(l Listener[K]) func() {
	if l == nil {
		return func() {}
	}
	id := p.nextID
	p.nextID++
	p.listeners[id] = l
	return func() { delete(p.listeners, id) }
}

// Dispatch applies a and returns the resulting state. Actions dispatched by a listener while
// another action is being applied are queued and applied afterwards, in order.
func (p *Provider[K]) Dispatch(a Action[K]) State[K] {
	if a == nil {
		return p.state
	}
	p.queue = append(p.queue, a)
	if p.draining {
		return p.state
	}
	p.draining = true
	defer func() { p.draining = false }()
	for len(p.queue) > 0 {
		next := p.queue[0]
		p.queue = p.queue[1:]
		prev := p.state
		p.state = Apply(prev, next)
		p.log(next, prev, p.state)
		p.notify(Transition[K]{Action: next, Prev: prev, Next: p.state})
	}
	return p.state
}

func (p *Provider[K]) notify(t Transition[K]) {
	for id := 0; id < p.nextID; id++ {
		if l, ok := p.listeners[id]; ok {
			l(t)
		}
	}
}

func (p *Provider[K]) log(a Action[K], prev, next State[K]) {
	// anchors re-register on every render
	if r, ok := a.(RegisterStep[K]); ok {
		if old, ok := prev.registry.Lookup(r.Step.ID); ok && old == r.Step {
			return
		}
	}
	if ce := p.logger.Check(zap.DebugLevel, "tour transition"); ce != nil {
		fields := []zap.Field{
			zap.String("action", string(a.Kind())),
			zap.String("from", string(prev.Phase())),
			zap.String("to", string(next.Phase())),
		}
		if step, ok := next.Current(); ok {
			fields = append(fields, zap.String("step", fmt.Sprint(step.ID)))
		}
		ce.Write(fields...)
	}
}

func (p *Provider[K]) Register(step Step[K]) State[K] {
	return p.Dispatch(RegisterStep[K]{Step: step})
}

func (p *Provider[K]) Start() State[K] { return p.Dispatch(StartTour[K]{}) }

func (p *Provider[K]) StartAt(id K) State[K] {
	return p.Dispatch(StartTour[K]{StepID: id, HasStep: true})
}

func (p *Provider[K]) Next() State[K] { return p.Dispatch(NextStep[K]{}) }

func (p *Provider[K]) Previous() State[K] { return p.Dispatch(PreviousStep[K]{}) }

func (p *Provider[K]) End() State[K] { return p.Dispatch(EndTour[K]{}) }

// Jump forces the current step to the registered step for id. Unknown or unregistered ids are
// ignored.
func (p *Provider[K]) Jump(id K) State[K] {
	step, ok := p.state.registry.Lookup(id)
	if !ok {
		return p.state
	}
	return p.Dispatch(SetCurrentStep[K]{Step: step})
}

func (p *Provider[K]) SetAvailable(available bool) State[K] {
	return p.Dispatch(SetAvailability[K]{Available: available})
}
