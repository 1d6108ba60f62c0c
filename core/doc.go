// Package core contains the currency picker's contracts and state.
//
// Allowed here:
// - the Currency value and the filter engine
// - the picker state machine (visibility, query, cursor, scroll window)
// - key bindings and the shared palette
//
// Not allowed here:
// - concrete overlay rendering (see screens)
// - low-level widget rendering primitives (see widgets)
// - I/O of any kind
package core
