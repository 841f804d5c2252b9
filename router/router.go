// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/danielhkuo/acme-reservations/handlers"
	"github.com/danielhkuo/acme-reservations/middleware"
	"github.com/danielhkuo/acme-reservations/store"
)

func NewRouter(db *sqlx.DB, reg *prometheus.Registry) *http.ServeMux {
	mux := http.NewServeMux()
	metrics := middleware.NewMetrics(reg)

	// Initialize handlers
	st := store.New(db)
	customerHandler := handlers.NewCustomerHandler(st)
	restaurantHandler := handlers.NewRestaurantHandler(st)
	reservationHandler := handlers.NewReservationHandler(st)

	handle := func(pattern string, h http.HandlerFunc) {
		mux.HandleFunc(pattern, middleware.WithLogging(metrics.Instrument(pattern, h)))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.Handle("GET /metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	// Customers
	handle("GET /api/customer", customerHandler.ListCustomers)
	handle("POST /api/customer", customerHandler.CreateCustomer)

	// Restaurants
	handle("GET /api/restaurant", restaurantHandler.ListRestaurants)
	handle("POST /api/restaurant", restaurantHandler.CreateRestaurant)

	// Reservations
	handle("GET /api/reservation", reservationHandler.ListReservations)
	handle("POST /api/customer/{customer_id}/reservation", reservationHandler.CreateReservation)
	handle("DELETE /api/customer/{customer_id}/reservation/{id}", reservationHandler.DestroyReservation)

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("acme-reservations API v1"))
	})

	return mux
}
