// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

//go:build cgo

package db

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

func init() {
	classifiers = append(classifiers, classifySQLite3)
}

func classifySQLite3(err error) error {
	var liteErr sqlite3.Error
	if !errors.As(err, &liteErr) {
		return nil
	}
	return classifySQLiteCode(int(liteErr.ExtendedCode), liteErr.Error())
}
