// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (selector chrome, boxes, stacks, popup overlay compositor)
//
// Not allowed here:
// - key handling, picker state transitions, or currency filtering
package widgets
