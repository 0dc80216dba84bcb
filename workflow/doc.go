// Package workflow holds the dorm application lifecycle: the action to status
// table, the state machine that applies a transition and records it in the
// response history, the eligibility gate consulted before irreversible steps,
// and the filter/sort engine staff use to triage applications.
//
// Nothing here performs I/O. Callers load and persist applications.
package workflow
