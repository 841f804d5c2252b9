// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/danielhkuo/acme-reservations/cliparse"
	"github.com/danielhkuo/acme-reservations/db"
)

// GetTestConfig returns a standard test configuration backed by SQLite.
// DatabaseURL is filled in by SetupTestDB.
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3000,
		DatabaseType: cliparse.TypeSQLite,
		LogLevel:     "info",
		LogFormat:    "text",
	}
}

// SetupTestDB creates a fresh file-backed SQLite database with the full schema
func SetupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	cfg := GetTestConfig()
	cfg.DatabaseURL = filepath.Join(t.TempDir(), "reservations.db")

	conn, err := db.Open(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.CreateSchema(context.Background(), conn); err != nil {
		conn.Close()
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// CreateTestCustomer inserts a customer and returns its ID
func CreateTestCustomer(t *testing.T, conn *sqlx.DB, name string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := conn.Exec(conn.Rebind(`INSERT INTO customer (id, name) VALUES (?, ?)`), id, name)
	if err != nil {
		t.Fatalf("Failed to create test customer: %v", err)
	}

	return id
}

// CreateTestRestaurant inserts a restaurant and returns its ID
func CreateTestRestaurant(t *testing.T, conn *sqlx.DB, name string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := conn.Exec(conn.Rebind(`INSERT INTO restaurant (id, name) VALUES (?, ?)`), id, name)
	if err != nil {
		t.Fatalf("Failed to create test restaurant: %v", err)
	}

	return id
}

// CreateTestReservation inserts a reservation and returns its ID.
// date must be YYYY-MM-DD.
func CreateTestReservation(t *testing.T, conn *sqlx.DB, customerID, restaurantID uuid.UUID, date string, partyCount int) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := conn.Exec(conn.Rebind(`
		INSERT INTO reservation (id, customer_id, restaurant_id, reservation_date, party_count)
		VALUES (?, ?, ?, ?, ?)
	`), id, customerID, restaurantID, date, partyCount)
	if err != nil {
		t.Fatalf("Failed to create test reservation: %v", err)
	}

	return id
}

// ReservationExists reports whether a reservation row with id is present
func ReservationExists(t *testing.T, conn *sqlx.DB, id uuid.UUID) bool {
	t.Helper()

	var count int
	if err := conn.Get(&count, conn.Rebind(`SELECT COUNT(*) FROM reservation WHERE id = ?`), id); err != nil {
		t.Fatalf("Failed to look up reservation: %v", err)
	}

	return count > 0
}

// CountRows returns the number of rows in table
func CountRows(t *testing.T, conn *sqlx.DB, table string) int {
	t.Helper()

	var count int
	if err := conn.Get(&count, "SELECT COUNT(*) FROM "+table); err != nil {
		t.Fatalf("Failed to count %s rows: %v", table, err)
	}

	return count
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

// AssertInternalError checks for the generic 500 body
func AssertInternalError(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()
	AssertStatus(t, w, http.StatusInternalServerError)

	var resp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode error body %q: %v", w.Body.String(), err)
	}
	if resp.Error != "Internal Server Error" {
		t.Errorf("Expected generic error body, got %q", resp.Error)
	}
}
