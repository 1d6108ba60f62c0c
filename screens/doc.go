// Package screens contains concrete overlay flows rendered on top of a host view.
//
// Allowed here:
// - the currency picker component (selector button plus picker overlay)
// - overlay-specific presentation and interaction wiring
//
// Not allowed here:
// - ownership of the currency list or of the selected currency
// - low-level widget/layout primitives
package screens
