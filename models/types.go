// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Request types

type CreateCustomerRequest struct {
	Name *string `json:"name"`
}

type CreateRestaurantRequest struct {
	Name *string `json:"name"`
}

// party_count may arrive as a number or a numeric string
type CreateReservationRequest struct {
	RestaurantID    string          `json:"restaurant_id"`
	ReservationDate *string         `json:"reservation_date"`
	PartyCount      json.RawMessage `json:"party_count"`
}

// Domain types

type Customer struct {
	ID   uuid.UUID `json:"id" db:"id"`
	Name *string   `json:"name" db:"name"`
}

type Restaurant struct {
	ID   uuid.UUID `json:"id" db:"id"`
	Name *string   `json:"name" db:"name"`
}

type Reservation struct {
	ID              uuid.UUID `json:"id" db:"id"`
	ReservationDate Date      `json:"reservation_date" db:"reservation_date"`
	PartyCount      int       `json:"party_count" db:"party_count"`
	CustomerID      uuid.UUID `json:"customer_id" db:"customer_id"`
	RestaurantID    uuid.UUID `json:"restaurant_id" db:"restaurant_id"`
}

// Error response

type ErrorResponse struct {
	Error string `json:"error"`
}
