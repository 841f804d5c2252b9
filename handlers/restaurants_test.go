// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/danielhkuo/acme-reservations/models"
	"github.com/danielhkuo/acme-reservations/store"
	"github.com/danielhkuo/acme-reservations/testutil"
)

func TestCreateRestaurant(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewRestaurantHandler(store.New(db))

	names := []string{"BlueFin", "Joe's Steak House", "Burger Queen", "PancaKe FiddLes"}
	ids := make(map[uuid.UUID]bool)

	for _, name := range names {
		req := testutil.MakeRequest("POST", "/api/restaurant", map[string]string{"name": name}, nil)
		w := httptest.NewRecorder()
		handler.CreateRestaurant(w, req)

		testutil.AssertStatus(t, w, http.StatusCreated)

		var restaurant models.Restaurant
		testutil.AssertJSON(t, w, &restaurant)

		if restaurant.Name == nil || *restaurant.Name != name {
			t.Errorf("Expected name %q, got %v", name, restaurant.Name)
		}
		if restaurant.ID == uuid.Nil || ids[restaurant.ID] {
			t.Errorf("Expected a fresh id, got %s", restaurant.ID)
		}
		ids[restaurant.ID] = true
	}

	// Listing returns the same set
	w := httptest.NewRecorder()
	handler.ListRestaurants(w, httptest.NewRequest("GET", "/api/restaurant", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var restaurants []models.Restaurant
	testutil.AssertJSON(t, w, &restaurants)

	if len(restaurants) != len(names) {
		t.Fatalf("Expected %d restaurants, got %d", len(names), len(restaurants))
	}
	for _, r := range restaurants {
		if !ids[r.ID] {
			t.Errorf("Unexpected restaurant %s", r.ID)
		}
	}
}

func TestListRestaurants_DatabaseUnavailable(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := NewRestaurantHandler(store.New(db))
	db.Close()

	w := httptest.NewRecorder()
	handler.ListRestaurants(w, httptest.NewRequest("GET", "/api/restaurant", nil))

	testutil.AssertInternalError(t, w)
}

func TestCreateRestaurant_DatabaseUnavailable(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := NewRestaurantHandler(store.New(db))
	db.Close()

	req := testutil.MakeRequest("POST", "/api/restaurant", map[string]string{"name": "BlueFin"}, nil)
	w := httptest.NewRecorder()
	handler.CreateRestaurant(w, req)

	testutil.AssertInternalError(t, w)
}
