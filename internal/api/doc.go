// Package api handles incoming HTTP requests for the generation endpoint,
// request validation, and response formatting. It acts as an adapter between
// HTTP clients and the generation service.
package api
