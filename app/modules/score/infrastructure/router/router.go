package scorerouter

import (
	"net/http"

	scorehandlers "github.com/Black-And-White-Club/pinned-scores/app/modules/score/infrastructure/handlers"
	"github.com/go-chi/chi/v5"
)

// Route paths, relative to BasePath.
const (
	BasePath   = "/pinned"
	PinnedPath = "/pinned"
	PinPath    = "/pin"
	UnpinPath  = "/unpin"
)

// RegisterRoutes mounts the pinned score endpoints under BasePath. The
// listing is public; pin and unpin go through requireToken.
func RegisterRoutes(r chi.Router, h scorehandlers.Handlers, requireToken func(http.Handler) http.Handler, middlewares ...func(http.Handler) http.Handler) {
	r.Route(BasePath, func(r chi.Router) {
		r.Use(middlewares...)

		r.Get(PinnedPath, h.HandleGetPinned)

		r.Group(func(r chi.Router) {
			r.Use(requireToken)
			r.Post(PinPath, h.HandlePin)
			r.Post(UnpinPath, h.HandleUnpin)
		})
	})
}
