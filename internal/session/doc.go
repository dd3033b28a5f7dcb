// Package session holds the card view state of a single user session.
//
// State is an immutable value. Every change goes through Reduce, which
// returns the next State and, when the transition needs a side effect, a
// Command describing it. Reduce performs no I/O; the caller executes the
// command and feeds the outcome back in as another Action.
package session
