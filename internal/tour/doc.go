// Package tour implements the guided product-tour state machine.
//
// Allowed here:
// - step registry, tour state and the pure Apply transition function
// - the Provider that serializes dispatch for one tour instance
// - the Anchor binding used by views that render a step
//
// Not allowed here:
// - rendering (chrome is supplied by the caller)
// - persistence, eligibility checks or any other I/O
package tour
