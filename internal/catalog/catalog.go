package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

var (
	ErrUnknownTour = errors.New("unknown tour")
	ErrUnknownStep = errors.New("unknown step")
)

// UnknownError reports a name that is not declared, with the closest declared name if one is
// near enough to be a typo.
type UnknownError struct {
	Kind       error
	Name       string
	Suggestion string
}

func (e *UnknownError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%v %q (did you mean %q?)", e.Kind, e.Name, e.Suggestion)
	}
	return fmt.Sprintf("%v %q", e.Kind, e.Name)
}

func (e *UnknownError) Unwrap() error { return e.Kind }

// Entry describes a declared tour independently of its key type.
type Entry struct {
	Name  string
	Title string
	Steps []StepInfo
}

// StepInfo is the display form of one declared step.
type StepInfo struct {
	Key         string
	Title       string
	Description string
}

func (e Entry) Keys() []string {
	out := make([]string, len(e.Steps))
	for i, s := range e.Steps {
		out[i] = s.Key
	}
	return out
}

// StepIndex resolves a step key to its position in the tour.
func (e Entry) StepIndex(key string) (int, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	for i, s := range e.Steps {
		if s.Key == key {
			return i, nil
		}
	}
	return -1, &UnknownError{Kind: ErrUnknownStep, Name: key, Suggestion: closest(key, e.Keys())}
}

var entries = map[string]Entry{
	IssueDetailsTour: IssueDetails.Entry(),
	ReplayTour:       Replay.Entry(),
}

// Names returns the declared tours sorted by name.
func Names() []string {
	out := make([]string, 0, len(entries))
	for name := range entries {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func All() []Entry {
	names := Names()
	out := make([]Entry, 0, len(names))
	for _, n := range names {
		out = append(out, entries[n])
	}
	return out
}

func Lookup(name string) (Entry, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if e, ok := entries[name]; ok {
		return e, nil
	}
	return Entry{}, &UnknownError{Kind: ErrUnknownTour, Name: name, Suggestion: closest(name, Names())}
}

// closest returns the candidate with the smallest edit distance to name, if that distance is
// at most a third of the longer string.
func closest(name string, candidates []string) string {
	if name == "" {
		return ""
	}
	best, bestDist := "", -1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(name, c)
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	limit := len(name)
	if len(best) > limit {
		limit = len(best)
	}
	if bestDist < 0 || bestDist*3 > limit {
		return ""
	}
	return best
}
