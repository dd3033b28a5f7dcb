// Package task runs generation requests as asynchronous tasks. A Runner
// owns a bounded in-memory queue and a small pool of workers; tasks publish
// their outcome as events instead of returning it to the submitter.
package task
