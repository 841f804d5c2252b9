// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/danielhkuo/acme-reservations/models"
)

// SeedResult lists the rows created by Seed
type SeedResult struct {
	Customers    []models.Customer
	Restaurants  []models.Restaurant
	Reservations []models.Reservation // still present after Seed returns
}

// Seed fills an empty database with demo data: three customers, four
// restaurants and four reservations, two of which are then destroyed.
func (s *Store) Seed(ctx context.Context) (SeedResult, error) {
	var result SeedResult

	for _, name := range []string{"Lauren", "Jim", "Kim"} {
		c, err := s.CreateCustomer(ctx, &name)
		if err != nil {
			return SeedResult{}, fmt.Errorf("failed to seed customer %s: %w", name, err)
		}
		result.Customers = append(result.Customers, c)
	}

	for _, name := range []string{"BlueFin", "Joe's Steak House", "Burger Queen", "PancaKe FiddLes"} {
		r, err := s.CreateRestaurant(ctx, &name)
		if err != nil {
			return SeedResult{}, fmt.Errorf("failed to seed restaurant %s: %w", name, err)
		}
		result.Restaurants = append(result.Restaurants, r)
	}

	lauren, jim, kim := result.Customers[0], result.Customers[1], result.Customers[2]
	blueFin, joes, burgerQueen, pancakeFiddles := result.Restaurants[0], result.Restaurants[1], result.Restaurants[2], result.Restaurants[3]

	seeds := []struct {
		customer   models.Customer
		restaurant models.Restaurant
		date       string
		partyCount int
	}{
		{jim, blueFin, "2024-06-21", 4},
		{jim, burgerQueen, "2024-6-1", 3},
		{lauren, joes, "2024-06-21", 2},
		{kim, pancakeFiddles, "2024-06-21", 5},
	}

	created := make([]models.Reservation, 0, len(seeds))
	for _, seed := range seeds {
		r, err := s.CreateReservation(ctx, NewReservation{
			CustomerID:      seed.customer.ID,
			RestaurantID:    uuid.NullUUID{UUID: seed.restaurant.ID, Valid: true},
			ReservationDate: &seed.date,
			PartyCount:      &seed.partyCount,
		})
		if err != nil {
			return SeedResult{}, fmt.Errorf("failed to seed reservation: %w", err)
		}
		created = append(created, r)
	}

	// Exercise the delete path: Jim cancels BlueFin, Lauren cancels Joe's
	if err := s.DestroyReservation(ctx, created[0].ID, jim.ID); err != nil {
		return SeedResult{}, err
	}
	if err := s.DestroyReservation(ctx, created[2].ID, lauren.ID); err != nil {
		return SeedResult{}, err
	}

	result.Reservations = []models.Reservation{created[1], created[3]}
	return result, nil
}
