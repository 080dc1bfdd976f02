package tour

// Decision is the render decision for one anchor.
type Decision[K comparable] struct {
	Highlight   bool
	Step        Step[K]
	Index       int
	Total       int
	HasPrevious bool
	IsLast      bool
}

// Chrome wraps a payload with tour affordances for a highlighted step.
type Chrome[K comparable] func(payload string, d Decision[K]) string

// Anchor binds a piece of UI to one step of a tour.
type Anchor[K comparable] struct {
	provider *Provider[K]
	step     Step[K]
}

func NewAnchor[K comparable](p *Provider[K], step Step[K]) *Anchor[K] {
	return &Anchor[K]{provider: p, step: step}
}

func (a *Anchor[K]) Step() Step[K] { return a.step }

// Mount announces the step to the tour.
func (a *Anchor[K]) Mount() {
	a.provider.Register(a.step)
}

// Decide re-announces the step and reports whether it is the one being shown.
func (a *Anchor[K]) Decide() Decision[K] {
	s := a.provider.Register(a.step)
	d := Decision[K]{Step: a.step, Index: s.IndexOf(a.step.ID), Total: len(s.ids)}
	cur, ok := s.Current()
	if !ok || !s.IsAvailable() || !s.IsRegistered() || cur.ID != a.step.ID {
		return d
	}
	d.Highlight = true
	d.HasPrevious = d.Index > 0
	d.IsLast = d.Index == d.Total-1
	return d
}

// Render returns payload wrapped by chrome when this step is current, otherwise payload as is.
func (a *Anchor[K]) Render(payload string, chrome Chrome[K]) string {
	d := a.Decide()
	if !d.Highlight || chrome == nil {
		return payload
	}
	return chrome(payload, d)
}
