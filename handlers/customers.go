// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/acme-reservations/middleware"
	"github.com/danielhkuo/acme-reservations/models"
	"github.com/danielhkuo/acme-reservations/store"
)

type CustomerHandler struct {
	store *store.Store
}

func NewCustomerHandler(st *store.Store) *CustomerHandler {
	return &CustomerHandler{store: st}
}

// ListCustomers handles GET /api/customer
func (h *CustomerHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.store.FetchCustomers(r.Context())
	if err != nil {
		internalError(w, "failed to fetch customers", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, customers)
}

// CreateCustomer handles POST /api/customer
// A missing name is stored as NULL.
func (h *CustomerHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCustomerRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		internalError(w, "failed to parse customer body", invalidInput(err))
		return
	}

	customer, err := h.store.CreateCustomer(r.Context(), req.Name)
	if err != nil {
		internalError(w, "failed to create customer", err)
		return
	}

	slog.Info("customer created", "customer_id", customer.ID)

	middleware.JSONResponse(w, http.StatusCreated, customer)
}
