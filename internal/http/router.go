package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"invoicedash/internal/http/customer"
	"invoicedash/internal/http/dashboard"
	"invoicedash/internal/http/invoice"
)

func New(
	allowedOrigins []string,
	dashboardV1 *dashboard.Handler,
	invoicesV1 *invoice.Handler,
	customersV1 *customer.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/dashboard", dashboardV1.Routes)

		r.Route("/invoices", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/x-www-form-urlencoded", "multipart/form-data"))
			invoicesV1.Routes(r)
		})

		r.Route("/customers", customersV1.Routes)
	})

	return router
}
