// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/acme-reservations/db"
	"github.com/danielhkuo/acme-reservations/middleware"
)

// internalError logs err with its classification and writes the generic 500.
// Clients never see whether the cause was bad input, a missing row or an outage.
func internalError(w http.ResponseWriter, msg string, err error) {
	slog.Error(msg, "error", err, "kind", db.Kind(err))
	middleware.ErrorResponse(w, http.StatusInternalServerError)
}

func invalidInput(err error) error {
	return fmt.Errorf("%w: %w", db.ErrInvalidInput, err)
}
