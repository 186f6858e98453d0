// Package form holds the login form state and its transitions.
//
// Allowed here:
// - the FormState value and the pure reducer over it
// - submission validation
//
// Not allowed here:
// - rendering, key handling or anything that imports bubbletea
package form
