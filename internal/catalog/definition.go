package catalog

import (
	"fmt"

	"github.com/jask/waypoint/internal/tour"
)

// Definition declares one tour with key type K.
type Definition[K comparable] struct {
	Name  string
	Title string
	Steps []tour.Step[K]
}

// IDs returns the ordered step keys.
func (d Definition[K]) IDs() []K {
	out := make([]K, len(d.Steps))
	for i, s := range d.Steps {
		out[i] = s.ID
	}
	return out
}

func (d Definition[K]) Step(id K) (tour.Step[K], bool) {
	for _, s := range d.Steps {
		if s.ID == id {
			return s, true
		}
	}
	return tour.Step[K]{}, false
}

// Entry returns the key-agnostic form used by the CLI and persistence.
func (d Definition[K]) Entry() Entry {
	e := Entry{Name: d.Name, Title: d.Title, Steps: make([]StepInfo, len(d.Steps))}
	for i, s := range d.Steps {
		e.Steps[i] = StepInfo{Key: KeyString(s.ID), Title: s.Title, Description: s.Description}
	}
	return e
}

// KeyString renders a step key for display and storage.
func KeyString[K comparable](id K) string {
	if s, ok := any(id).(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprint(id)
}
