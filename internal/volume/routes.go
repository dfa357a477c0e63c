package volume

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts the volume endpoints under /volumes.
func RegisterRoutes(r chi.Router) {
	r.Route("/volumes", func(r chi.Router) {
		r.Get("/shapes", ListShapes)
		r.Post("/compute", Compute)
		r.Post("/events", HandleEvent)
	})
}
