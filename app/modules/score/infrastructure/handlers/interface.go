package scorehandlers

import "net/http"

// Handlers serves the pinned score HTTP endpoints.
type Handlers interface {
	HandleGetPinned(w http.ResponseWriter, r *http.Request)
	HandlePin(w http.ResponseWriter, r *http.Request)
	HandleUnpin(w http.ResponseWriter, r *http.Request)
}
