// Package client calls the flashcard generation API over HTTP.
package client
