// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the reservations API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, prometheus.NewRegistry())

# Endpoints

	GET    /api/customer                                 - List customers
	POST   /api/customer                                 - Create customer
	GET    /api/restaurant                               - List restaurants
	POST   /api/restaurant                               - Create restaurant
	GET    /api/reservation                              - List reservations
	POST   /api/customer/{customer_id}/reservation       - Create reservation
	DELETE /api/customer/{customer_id}/reservation/{id}  - Delete reservation

Operational:

	GET /health  - Liveness
	GET /metrics - Prometheus metrics from the given registry
	GET /        - Version banner

API routes are wrapped with request logging and metrics, labelled by
their pattern.
*/
package router
