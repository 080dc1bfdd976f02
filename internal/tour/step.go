package tour

// Step is one stage of a tour. Title and Description are opaque to the state machine.
type Step[K comparable] struct {
	ID          K
	Title       string
	Description string
}

// Registry maps a step key to its registered step. A nil entry marks a declared step whose
// anchor has not mounted yet.
type Registry[K comparable] map[K]*Step[K]

func newRegistry[K comparable](ids []K) Registry[K] {
	r := make(Registry[K], len(ids))
	for _, id := range ids {
		r[id] = nil
	}
	return r
}

func (r Registry[K]) clone() Registry[K] {
	out := make(Registry[K], len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Lookup returns the registered step for id.
func (r Registry[K]) Lookup(id K) (Step[K], bool) {
	s, ok := r[id]
	if !ok || s == nil {
		return Step[K]{}, false
	}
	return *s, true
}

// Covers reports whether every id has a registered step.
func (r Registry[K]) Covers(ids []K) bool {
	for _, id := range ids {
		if r[id] == nil {
			return false
		}
	}
	return true
}
