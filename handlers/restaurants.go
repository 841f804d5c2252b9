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

type RestaurantHandler struct {
	store *store.Store
}

func NewRestaurantHandler(st *store.Store) *RestaurantHandler {
	return &RestaurantHandler{store: st}
}

// ListRestaurants handles GET /api/restaurant
func (h *RestaurantHandler) ListRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.store.FetchRestaurants(r.Context())
	if err != nil {
		internalError(w, "failed to fetch restaurants", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, restaurants)
}

// CreateRestaurant handles POST /api/restaurant
func (h *RestaurantHandler) CreateRestaurant(w http.ResponseWriter, r *http.Request) {
	var req models.CreateRestaurantRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		internalError(w, "failed to parse restaurant body", invalidInput(err))
		return
	}

	restaurant, err := h.store.CreateRestaurant(r.Context(), req.Name)
	if err != nil {
		internalError(w, "failed to create restaurant", err)
		return
	}

	slog.Info("restaurant created", "restaurant_id", restaurant.ID)

	middleware.JSONResponse(w, http.StatusCreated, restaurant)
}
