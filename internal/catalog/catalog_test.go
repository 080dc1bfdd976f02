package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNames(t *testing.T) {
	require.Equal(t, []string{IssueDetailsTour, ReplayTour}, Names())
	require.Len(t, All(), 2)
}

func TestLookup(t *testing.T) {
	e, err := Lookup(" Issue-Details ")
	require.NoError(t, err)
	require.Equal(t, "Issue details", e.Title)
	require.Equal(t, []string{"aggregates", "filters", "event-navigation", "stack-trace", "breadcrumbs"}, e.Keys())
}

func TestLookupSuggestsClosest(t *testing.T) {
	_, err := Lookup("isue-details")
	require.ErrorIs(t, err, ErrUnknownTour)
	var unknown *UnknownError
	require.True(t, errors.As(err, &unknown))
	require.Equal(t, IssueDetailsTour, unknown.Suggestion)
	require.Contains(t, err.Error(), `did you mean "issue-details"`)
}

func TestLookupNoSuggestionWhenFar(t *testing.T) {
	_, err := Lookup("dashboards")
	var unknown *UnknownError
	require.True(t, errors.As(err, &unknown))
	require.Empty(t, unknown.Suggestion)
	require.Equal(t, `unknown tour "dashboards"`, err.Error())
}

func TestStepIndex(t *testing.T) {
	e, err := Lookup(ReplayTour)
	require.NoError(t, err)

	idx, err := e.StepIndex("console")
	require.NoError(t, err)
	require.Equal(t, 3, idx)

	_, err = e.StepIndex("timelime")
	require.ErrorIs(t, err, ErrUnknownStep)
	require.Contains(t, err.Error(), `"timeline"`)
}

func TestIntegerKeysRenderByName(t *testing.T) {
	require.Equal(t, []string{"player", "timeline", "breadcrumbs", "console"}, Replay.Entry().Keys())
	require.Equal(t, "console", KeyString(ReplayStepConsole))
	require.Equal(t, "7", KeyString(7))
}

func TestDefinitionStep(t *testing.T) {
	s, ok := IssueDetails.Step(IssueStepStackTrace)
	require.True(t, ok)
	require.Equal(t, "Stack trace", s.Title)
	_, ok = IssueDetails.Step("missing")
	require.False(t, ok)
	require.Len(t, IssueDetails.IDs(), 5)
}
