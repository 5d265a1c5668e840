package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"launch_dashboard/pkg/httpx/reply"
)

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/", func(r chi.Router) {
		r.Get("/", handler(s.getIndex))
		r.Get("/charts/{output}.svg", handler(s.getChartSVG))

		r.Route("/api/v1", func(r chi.Router) {
			r.Get("/layout", handler(s.getV1Layout))
			r.Post("/callbacks/{output}", handler(s.postV1Callback))
		})
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
