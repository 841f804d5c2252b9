// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the reservations API.

# Handler Types

Each handler is a struct wrapping a *store.Store:

  - CustomerHandler: list and create customers
  - RestaurantHandler: list and create restaurants
  - ReservationHandler: list, create and destroy reservations

	customers := handlers.NewCustomerHandler(store.New(db))

# Routes

	GET    /api/customer                                → ListCustomers
	POST   /api/customer                                → CreateCustomer
	GET    /api/restaurant                              → ListRestaurants
	POST   /api/restaurant                              → CreateRestaurant
	GET    /api/reservation                             → ListReservations
	POST   /api/customer/{customer_id}/reservation      → CreateReservation
	DELETE /api/customer/{customer_id}/reservation/{id} → DestroyReservation

# Errors

Every failure, whether a malformed id, a dangling foreign key or a lost
connection, is answered with

	500 {"error": "Internal Server Error"}

The cause is logged along with its classification from db.Kind.

# Party Count

party_count may arrive as a number or a string. PartyCount keeps the leading
integer part and turns anything non-numeric into NULL, so the insert fails on
the NOT NULL constraint instead of storing a bogus value.
*/
package handlers
