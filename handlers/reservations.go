// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/danielhkuo/acme-reservations/middleware"
	"github.com/danielhkuo/acme-reservations/models"
	"github.com/danielhkuo/acme-reservations/store"
)

type ReservationHandler struct {
	store *store.Store
}

func NewReservationHandler(st *store.Store) *ReservationHandler {
	return &ReservationHandler{store: st}
}

// ListReservations handles GET /api/reservation
func (h *ReservationHandler) ListReservations(w http.ResponseWriter, r *http.Request) {
	reservations, err := h.store.FetchReservations(r.Context())
	if err != nil {
		internalError(w, "failed to fetch reservations", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, reservations)
}

// CreateReservation handles POST /api/customer/{customer_id}/reservation
func (h *ReservationHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	customerID, err := parseUUID("customer_id", r.PathValue("customer_id"))
	if err != nil {
		internalError(w, "failed to create reservation", err)
		return
	}

	var req models.CreateReservationRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		internalError(w, "failed to parse reservation body", invalidInput(err))
		return
	}

	// Absent restaurant_id goes through as NULL
	var restaurantID uuid.NullUUID
	if req.RestaurantID != "" {
		id, err := parseUUID("restaurant_id", req.RestaurantID)
		if err != nil {
			internalError(w, "failed to create reservation", err)
			return
		}
		restaurantID = uuid.NullUUID{UUID: id, Valid: true}
	}

	reservation, err := h.store.CreateReservation(r.Context(), store.NewReservation{
		CustomerID:      customerID,
		RestaurantID:    restaurantID,
		ReservationDate: req.ReservationDate,
		PartyCount:      PartyCount(req.PartyCount),
	})
	if err != nil {
		internalError(w, "failed to create reservation", err)
		return
	}

	slog.Info("reservation created",
		"reservation_id", reservation.ID,
		"customer_id", reservation.CustomerID,
		"restaurant_id", reservation.RestaurantID,
	)

	middleware.JSONResponse(w, http.StatusCreated, reservation)
}

// DestroyReservation handles DELETE /api/customer/{customer_id}/reservation/{id}
// Responds 204 whether or not the reservation existed or belonged to the customer.
func (h *ReservationHandler) DestroyReservation(w http.ResponseWriter, r *http.Request) {
	customerID, err := parseUUID("customer_id", r.PathValue("customer_id"))
	if err != nil {
		internalError(w, "failed to delete reservation", err)
		return
	}

	id, err := parseUUID("id", r.PathValue("id"))
	if err != nil {
		internalError(w, "failed to delete reservation", err)
		return
	}

	if err := h.store.DestroyReservation(r.Context(), id, customerID); err != nil {
		internalError(w, "failed to delete reservation", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func parseUUID(field, value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, invalidInput(fmt.Errorf("%s %q: %w", field, value, err))
	}
	return id, nil
}
