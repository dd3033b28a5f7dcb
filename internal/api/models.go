package api

// StatusResponse is returned by the root liveness endpoint.
type StatusResponse struct {
	Message string `json:"message"`
}

// RootMessage is the body of GET /.
const RootMessage = "Flashcard Generator API is running"
