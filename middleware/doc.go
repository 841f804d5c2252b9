// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /api/customer", middleware.WithLogging(handler))

Logs request start (method, path, client IP) and completion (status,
duration_ms).

# Metrics

Metrics counts requests and observes latency per route pattern:

	m := middleware.NewMetrics(reg)
	mux.HandleFunc(pattern, m.Instrument(pattern, handler))

Exported as acme_reservations_http_requests_total{method,route,status}
and acme_reservations_http_request_duration_seconds{method,route}.

# CORS Middleware

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Allows GET, POST, DELETE and OPTIONS with the Content-Type header.
Preflight requests are answered with 204.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusCreated, customer)
	middleware.ErrorResponse(w, http.StatusInternalServerError)

ErrorResponse always writes {"error": "<status text>"}; causes stay in the
logs.

	var req models.CreateCustomerRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		// malformed JSON
	}

An empty body is not an error and leaves the target unchanged.
*/
package middleware
