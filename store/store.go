// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/danielhkuo/acme-reservations/models"
)

// Store runs the access operations against one database handle.
// Every method is a single statement; none of them open a transaction.
type Store struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// NewReservation holds the columns supplied by the caller.
// Nil or invalid fields are sent as NULL so the NOT NULL constraints reject them.
type NewReservation struct {
	CustomerID      uuid.UUID
	RestaurantID    uuid.NullUUID
	ReservationDate *string
	PartyCount      *int
}

// Customer operations

func (s *Store) CreateCustomer(ctx context.Context, name *string) (models.Customer, error) {
	var customer models.Customer
	err := s.db.QueryRowxContext(ctx, s.db.Rebind(`
		INSERT INTO customer (id, name) VALUES (?, ?)
		RETURNING id, name
	`), uuid.New(), name).StructScan(&customer)
	if err != nil {
		return models.Customer{}, fmt.Errorf("failed to insert customer: %w", err)
	}

	return customer, nil
}

func (s *Store) FetchCustomers(ctx context.Context) ([]models.Customer, error) {
	customers := []models.Customer{}
	if err := s.db.SelectContext(ctx, &customers, `SELECT id, name FROM customer`); err != nil {
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}

	return customers, nil
}

// Restaurant operations

func (s *Store) CreateRestaurant(ctx context.Context, name *string) (models.Restaurant, error) {
	var restaurant models.Restaurant
	err := s.db.QueryRowxContext(ctx, s.db.Rebind(`
		INSERT INTO restaurant (id, name) VALUES (?, ?)
		RETURNING id, name
	`), uuid.New(), name).StructScan(&restaurant)
	if err != nil {
		return models.Restaurant{}, fmt.Errorf("failed to insert restaurant: %w", err)
	}

	return restaurant, nil
}

func (s *Store) FetchRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	restaurants := []models.Restaurant{}
	if err := s.db.SelectContext(ctx, &restaurants, `SELECT id, name FROM restaurant`); err != nil {
		return nil, fmt.Errorf("failed to query restaurants: %w", err)
	}

	return restaurants, nil
}

// Reservation operations

func (s *Store) CreateReservation(ctx context.Context, r NewReservation) (models.Reservation, error) {
	var date, partyCount interface{}
	if r.ReservationDate != nil {
		date = models.NormalizeDate(*r.ReservationDate)
	}
	if r.PartyCount != nil {
		partyCount = *r.PartyCount
	}

	var reservation models.Reservation
	err := s.db.QueryRowxContext(ctx, s.db.Rebind(`
		INSERT INTO reservation (id, customer_id, restaurant_id, reservation_date, party_count)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id, reservation_date, party_count, customer_id, restaurant_id
	`), uuid.New(), r.CustomerID, r.RestaurantID, date, partyCount).StructScan(&reservation)
	if err != nil {
		return models.Reservation{}, fmt.Errorf("failed to insert reservation: %w", err)
	}

	return reservation, nil
}

func (s *Store) FetchReservations(ctx context.Context) ([]models.Reservation, error) {
	reservations := []models.Reservation{}
	err := s.db.SelectContext(ctx, &reservations, `
		SELECT id, reservation_date, party_count, customer_id, restaurant_id
		FROM reservation
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query reservations: %w", err)
	}

	return reservations, nil
}

// DestroyReservation deletes the reservation only if it belongs to customerID.
// A missing or foreign reservation deletes nothing and is not an error.
func (s *Store) DestroyReservation(ctx context.Context, id, customerID uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, s.db.Rebind(`
		DELETE FROM reservation WHERE id = ? AND customer_id = ?
	`), id, customerID)
	if err != nil {
		return fmt.Errorf("failed to delete reservation: %w", err)
	}

	if n, err := result.RowsAffected(); err == nil {
		slog.Debug("reservation delete", "reservation_id", id, "customer_id", customerID, "rows", n)
	}

	return nil
}
