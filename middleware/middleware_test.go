// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/danielhkuo/acme-reservations/models"
)

func TestWithLogging(t *testing.T) {
	handlerCalled := false
	testHandler := func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("success"))
	}

	wrappedHandler := WithLogging(testHandler)

	req := httptest.NewRequest("GET", "/api/customer", nil)
	w := httptest.NewRecorder()

	wrappedHandler(w, req)

	if !handlerCalled {
		t.Error("Expected handler to be called")
	}
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if w.Body.String() != "success" {
		t.Errorf("Expected body 'success', got '%s'", w.Body.String())
	}
}

func TestWithLogging_PreservesResponse(t *testing.T) {
	testCases := []struct {
		name       string
		statusCode int
		body       string
	}{
		{"OK", http.StatusOK, "[]"},
		{"Created", http.StatusCreated, `{"id":"123"}`},
		{"NoContent", http.StatusNoContent, ""},
		{"InternalError", http.StatusInternalServerError, `{"error":"Internal Server Error"}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler := WithLogging(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.statusCode)
				w.Write([]byte(tc.body))
			})

			req := httptest.NewRequest("POST", "/api/customer", nil)
			w := httptest.NewRecorder()

			handler(w, req)

			if w.Code != tc.statusCode {
				t.Errorf("Expected status %d, got %d", tc.statusCode, w.Code)
			}
			if w.Body.String() != tc.body {
				t.Errorf("Expected body '%s', got '%s'", tc.body, w.Body.String())
			}
		})
	}
}

func TestStatusRecorder(t *testing.T) {
	w := httptest.NewRecorder()
	rec := record(w)

	if rec.status != http.StatusOK {
		t.Errorf("Expected implicit 200, got %d", rec.status)
	}

	rec.WriteHeader(http.StatusNoContent)
	if rec.status != http.StatusNoContent || w.Code != http.StatusNoContent {
		t.Errorf("Expected 204 recorded and forwarded, got %d / %d", rec.status, w.Code)
	}

	// Nested middleware shares one recorder
	if record(rec) != rec {
		t.Error("Expected record to reuse an existing recorder")
	}
}

func TestJSONResponse(t *testing.T) {
	id := uuid.MustParse("0b8e6a7c-53b1-4c61-9f0e-2f7c1c6f3a10")
	name := "Kim"

	testCases := []struct {
		name       string
		statusCode int
		data       interface{}
		expected   string
	}{
		{
			name:       "created customer",
			statusCode: http.StatusCreated,
			data:       models.Customer{ID: id, Name: &name},
			expected:   `{"id":"0b8e6a7c-53b1-4c61-9f0e-2f7c1c6f3a10","name":"Kim"}`,
		},
		{
			name:       "customer without name",
			statusCode: http.StatusCreated,
			data:       models.Customer{ID: id},
			expected:   `{"id":"0b8e6a7c-53b1-4c61-9f0e-2f7c1c6f3a10","name":null}`,
		},
		{
			name:       "reservation",
			statusCode: http.StatusCreated,
			data: models.Reservation{
				ID:              id,
				ReservationDate: models.NewDate(2024, 6, 21),
				PartyCount:      5,
				CustomerID:      id,
				RestaurantID:    id,
			},
			expected: `{"id":"0b8e6a7c-53b1-4c61-9f0e-2f7c1c6f3a10","reservation_date":"2024-06-21","party_count":5,` +
				`"customer_id":"0b8e6a7c-53b1-4c61-9f0e-2f7c1c6f3a10","restaurant_id":"0b8e6a7c-53b1-4c61-9f0e-2f7c1c6f3a10"}`,
		},
		{
			name:       "empty list",
			statusCode: http.StatusOK,
			data:       []models.Customer{},
			expected:   `[]`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			JSONResponse(w, tc.statusCode, tc.data)

			if w.Code != tc.statusCode {
				t.Errorf("Expected status %d, got %d", tc.statusCode, w.Code)
			}

			contentType := w.Header().Get("Content-Type")
			if contentType != "application/json" {
				t.Errorf("Expected Content-Type 'application/json', got '%s'", contentType)
			}

			// Trim newline added by Encode
			body := strings.TrimSpace(w.Body.String())
			if body != tc.expected {
				t.Errorf("Expected body '%s', got '%s'", tc.expected, body)
			}
		})
	}
}

func TestErrorResponse(t *testing.T) {
	w := httptest.NewRecorder()

	ErrorResponse(w, http.StatusInternalServerError)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", w.Code)
	}
	if w.Header().Get("Content-Type") != "application/json" {
		t.Error("Expected Content-Type 'application/json'")
	}

	body := strings.TrimSpace(w.Body.String())
	if body != `{"error":"Internal Server Error"}` {
		t.Errorf("Unexpected error body: %s", body)
	}
}

func TestParseJSONBody(t *testing.T) {
	t.Run("valid JSON", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"Kim"}`))

		var parsed models.CreateCustomerRequest
		if err := ParseJSONBody(req, &parsed); err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
		if parsed.Name == nil || *parsed.Name != "Kim" {
			t.Errorf("Expected name 'Kim', got %v", parsed.Name)
		}
	})

	t.Run("invalid JSON", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader(`{invalid json}`))

		var parsed models.CreateCustomerRequest
		if err := ParseJSONBody(req, &parsed); err == nil {
			t.Error("Expected error for invalid JSON")
		}
	})

	t.Run("empty body behaves like an empty object", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader(""))

		var parsed models.CreateCustomerRequest
		if err := ParseJSONBody(req, &parsed); err != nil {
			t.Fatalf("Expected no error for empty body, got: %v", err)
		}
		if parsed.Name != nil {
			t.Error("Expected name to stay nil")
		}
	})

	t.Run("party_count kept raw", func(t *testing.T) {
		body := `{"restaurant_id":"x","reservation_date":"2024-06-21","party_count":"5"}`
		req := httptest.NewRequest("POST", "/", strings.NewReader(body))

		var parsed models.CreateReservationRequest
		if err := ParseJSONBody(req, &parsed); err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
		if string(parsed.PartyCount) != `"5"` {
			t.Errorf("Expected raw party_count \"5\", got %s", parsed.PartyCount)
		}
	})

	t.Run("body is closed after parsing", func(t *testing.T) {
		bodyReader := io.NopCloser(bytes.NewReader([]byte(`{"name":"Kim"}`)))
		req := httptest.NewRequest("POST", "/", bodyReader)

		var parsed models.CreateCustomerRequest
		_ = ParseJSONBody(req, &parsed)

		remaining, _ := io.ReadAll(req.Body)
		if len(remaining) > 0 {
			t.Error("Expected body to be consumed")
		}
	})
}

func TestCORS(t *testing.T) {
	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("handled"))
	})

	corsHandler := CORS(nextHandler)

	t.Run("preflight OPTIONS request", func(t *testing.T) {
		req := httptest.NewRequest("OPTIONS", "/api/customer", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		w := httptest.NewRecorder()

		corsHandler.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Errorf("Expected status 204, got %d", w.Code)
		}
		if w.Body.String() != "" {
			t.Errorf("Expected empty body for preflight, got '%s'", w.Body.String())
		}
		if w.Header().Get("Access-Control-Allow-Origin") != "http://localhost:5173" {
			t.Error("Expected Access-Control-Allow-Origin to match request origin")
		}

		allowedMethods := w.Header().Get("Access-Control-Allow-Methods")
		for _, method := range []string{"GET", "POST", "DELETE"} {
			if !strings.Contains(allowedMethods, method) {
				t.Errorf("Expected %s in allowed methods", method)
			}
		}
	})

	t.Run("regular request calls next", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/customer", nil)
		w := httptest.NewRecorder()

		corsHandler.ServeHTTP(w, req)

		if w.Body.String() != "handled" {
			t.Error("Expected next handler to be called")
		}
		if w.Header().Get("Access-Control-Allow-Origin") != "*" {
			t.Error("Expected Access-Control-Allow-Origin to default to '*'")
		}
	})
}

func TestGetClientIP(t *testing.T) {
	testCases := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		expectedIP string
	}{
		{"X-Forwarded-For single IP", map[string]string{"X-Forwarded-For": "192.168.1.100"}, "10.0.0.1:12345", "192.168.1.100"},
		{"X-Forwarded-For chain", map[string]string{"X-Forwarded-For": "203.0.113.195, 70.41.3.18"}, "127.0.0.1:12345", "203.0.113.195"},
		{"X-Real-IP", map[string]string{"X-Real-IP": "203.0.113.50"}, "10.0.0.1:12345", "203.0.113.50"},
		{"X-Forwarded-For over X-Real-IP", map[string]string{"X-Forwarded-For": "192.168.1.100", "X-Real-IP": "203.0.113.50"}, "10.0.0.1:12345", "192.168.1.100"},
		{"RemoteAddr with port", nil, "192.168.1.50:54321", "192.168.1.50"},
		{"RemoteAddr without port", nil, "192.168.1.50", "192.168.1.50"},
		{"IPv6 RemoteAddr with port", nil, "[::1]:12345", "::1"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tc.remoteAddr
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}

			if got := GetClientIP(req); got != tc.expectedIP {
				t.Errorf("Expected IP '%s', got '%s'", tc.expectedIP, got)
			}
		})
	}
}
