package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Handlers interface {
	Ping(w http.ResponseWriter, r *http.Request)

	GetOrders(w http.ResponseWriter, r *http.Request)
	CreateOrder(w http.ResponseWriter, r *http.Request)
	UpdateOrderStatus(w http.ResponseWriter, r *http.Request)

	GetReviews(w http.ResponseWriter, r *http.Request)
	CreateReview(w http.ResponseWriter, r *http.Request)

	AdminOrders(w http.ResponseWriter, r *http.Request)
	AdminReviews(w http.ResponseWriter, r *http.Request)
}

func InitRoutes(r *chi.Mux, h Handlers) *chi.Mux {

	r.Get("/ping", h.Ping)

	r.Route("/api", func(r chi.Router) {
		r.Get("/orders", h.GetOrders)
		r.Post("/orders", h.CreateOrder)
		r.Post("/orders/{id}/status", h.UpdateOrderStatus)

		r.Get("/reviews", h.GetReviews)
		r.Post("/reviews", h.CreateReview)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Get("/orders", h.AdminOrders)
		r.Get("/reviews", h.AdminReviews)
	})

	return r
}
