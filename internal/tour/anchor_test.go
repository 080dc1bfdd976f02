package tour

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func bracket(payload string, d Decision[string]) string {
	return fmt.Sprintf("[%d/%d %s] %s", d.Index+1, d.Total, d.Step.Title, payload)
}

func TestAnchorMountRegisters(t *testing.T) {
	p := NewProvider([]string{"A", "B"})
	a := NewAnchor(p, Step[string]{ID: "A", Title: "First"})
	b := NewAnchor(p, Step[string]{ID: "B", Title: "Second"})

	a.Mount()
	require.False(t, p.State().IsRegistered())
	b.Mount()
	require.True(t, p.State().IsRegistered())
}

func TestAnchorRenderDecision(t *testing.T) {
	p := NewProvider([]string{"A", "B"}, WithAvailable[string](true))
	a := NewAnchor(p, Step[string]{ID: "A", Title: "First"})
	b := NewAnchor(p, Step[string]{ID: "B", Title: "Second"})
	a.Mount()
	b.Mount()

	require.Equal(t, "body", a.Render("body", bracket), "idle tour renders payload unchanged")

	p.Start()
	require.Equal(t, "[1/2 First] body", a.Render("body", bracket))
	require.Equal(t, "other", b.Render("other", bracket))

	d := a.Decide()
	require.True(t, d.Highlight)
	require.False(t, d.HasPrevious)
	require.False(t, d.IsLast)

	p.Next()
	d = b.Decide()
	require.True(t, d.Highlight)
	require.True(t, d.HasPrevious)
	require.True(t, d.IsLast)
}

func TestAnchorNoChromeWhenUnavailable(t *testing.T) {
	p := NewProvider([]string{"A"})
	a := NewAnchor(p, Step[string]{ID: "A"})
	a.Mount()
	// Deep link bypasses the start gate, but chrome still requires availability.
	p.Jump("A")
	require.True(t, p.State().IsActive())
	require.Equal(t, "body", a.Render("body", bracket))
}

func TestAnchorRenderWithoutChrome(t *testing.T) {
	p := NewProvider([]string{"A"}, WithAvailable[string](true))
	a := NewAnchor(p, Step[string]{ID: "A"})
	a.Mount()
	p.Start()
	require.Equal(t, "body", a.Render("body", nil))
}

func TestAnchorRerenderIsIdempotent(t *testing.T) {
	p := NewProvider([]string{"A"}, WithAvailable[string](true))
	a := NewAnchor(p, Step[string]{ID: "A"})
	a.Mount()
	p.Start()
	before := p.State()
	for i := 0; i < 3; i++ {
		a.Render("body", bracket)
	}
	requireSame(t, before, p.State())
}
