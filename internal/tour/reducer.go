package tour

// Apply returns the state that follows s under a. It never panics and never mutates s; any
// action whose precondition fails returns s unchanged.
func Apply[K comparable](s State[K], a Action[K]) State[K] {
	switch act := a.(type) {
	case RegisterStep[K]:
		return s.register(act.Step)
	case StartTour[K]:
		return s.start(act)
	case NextStep[K]:
		return s.move(1)
	case PreviousStep[K]:
		return s.move(-1)
	case EndTour[K]:
		return s.end()
	case SetCurrentStep[K]:
		return s.force(act.Step)
	case SetAvailability[K]:
		if s.available == act.Available {
			return s
		}
		s.available = act.Available
		return s
	default:
		return s
	}
}

func (s State[K]) register(step Step[K]) State[K] {
	if prev := s.registry[step.ID]; prev != nil && *prev == step {
		return s
	}
	reg := s.registry.clone()
	owned := step
	reg[step.ID] = &owned
	s.registry = reg
	return s
}

func (s State[K]) start(act StartTour[K]) State[K] {
	if !s.available || !s.IsRegistered() || len(s.ids) == 0 {
		return s
	}
	target := s.ids[0]
	if act.HasStep && s.IndexOf(act.StepID) >= 0 {
		target = act.StepID
	}
	s.current = s.registry[target]
	s.complete = false
	return s
}

func (s State[K]) move(delta int) State[K] {
	if s.current == nil {
		return s
	}
	idx := s.IndexOf(s.current.ID) + delta
	if idx < 0 {
		return s
	}
	if idx >= len(s.ids) {
		return s.end()
	}
	next := s.registry[s.ids[idx]]
	if next == nil {
		return s
	}
	s.current = next
	return s
}

func (s State[K]) end() State[K] {
	if s.current == nil && s.complete {
		return s
	}
	s.current = nil
	s.complete = true
	return s
}

func (s State[K]) force(step Step[K]) State[K] {
	if s.IndexOf(step.ID) < 0 {
		return s
	}
	if s.current != nil && *s.current == step && !s.complete {
		return s
	}
	owned := step
	if reg := s.registry[step.ID]; reg != nil && *reg == step {
		s.current = reg
	} else {
		s.current = &owned
	}
	s.complete = false
	return s
}
