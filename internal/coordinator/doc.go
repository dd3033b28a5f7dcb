// Package coordinator owns the lifecycle of generation requests for one UI
// session. It turns user intents into session actions, runs the generation
// request as an asynchronous task, folds the task's outcome event back into
// the session state, and expires notices after a timeout.
//
// At most one request is in flight at a time. All state lives in a single
// session.State value guarded by the coordinator's mutex.
package coordinator
