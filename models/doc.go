// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Domain Types

Rows of the three tables, tagged for both JSON and sqlx scanning:

  - Customer: id, name
  - Restaurant: id, name
  - Reservation: id, reservation_date, party_count, customer_id, restaurant_id

Names are nullable (*string) because the columns are nullable and the
create endpoints forward a missing name as NULL.

# Date

Date wraps a calendar day. It scans from time.Time, string or []byte
(drivers disagree on how DATE comes back) and always renders as
YYYY-MM-DD in JSON and when bound as a query argument.

# Request Types

  - CreateCustomerRequest: name
  - CreateRestaurantRequest: name
  - CreateReservationRequest: restaurant_id, reservation_date, party_count

party_count is kept as raw JSON so the handler can coerce numbers and
numeric strings alike.

# Error Response

Every failure is reported as:

	{"error": "Internal Server Error"}
*/
package models
