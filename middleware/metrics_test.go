// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsInstrument(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	handler := m.Instrument("DELETE /api/customer/{customer_id}/reservation/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("DELETE", "/api/customer/a/reservation/b", nil)
		handler(httptest.NewRecorder(), req)
	}

	got := testutil.ToFloat64(m.requests.WithLabelValues("DELETE", "DELETE /api/customer/{customer_id}/reservation/{id}", "204"))
	if got != 3 {
		t.Errorf("Expected 3 requests counted, got %v", got)
	}

	if n := testutil.CollectAndCount(m.duration); n != 1 {
		t.Errorf("Expected one duration series, got %d", n)
	}
}

func TestMetricsImplicitStatus(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	// Writing a body without WriteHeader is an implicit 200
	handler := m.Instrument("GET /api/customer", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("[]"))
	})
	handler(httptest.NewRecorder(), httptest.NewRequest("GET", "/api/customer", nil))

	got := testutil.ToFloat64(m.requests.WithLabelValues("GET", "GET /api/customer", "200"))
	if got != 1 {
		t.Errorf("Expected 1 request with status 200, got %v", got)
	}
}

func TestNewMetricsRegistersOnce(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewMetrics(reg)

	defer func() {
		if recover() == nil {
			t.Error("Expected duplicate registration to panic")
		}
	}()
	NewMetrics(reg)
}
