// Package web serves the flashcard UI: a server-rendered page over one
// coordinator session, with form posts for every user action.
package web
