// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// PartyCount coerces a raw party_count the way a base-10 parseInt does:
// numbers are truncated, numeric strings keep their leading integer part and
// an array counts as its first element. Anything else yields nil, which the
// database rejects as NULL.
func PartyCount(raw json.RawMessage) *int {
	text := strings.TrimSpace(string(raw))
	if text == "" || text == "null" {
		return nil
	}

	switch text[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil
		}
		n, ok := parseIntPrefix(s)
		if !ok {
			return nil
		}
		return &n
	case '[':
		var elems []json.RawMessage
		if err := json.Unmarshal(raw, &elems); err != nil || len(elems) == 0 {
			return nil
		}
		return PartyCount(elems[0])
	}

	// Exponent forms such as 1e3 are numbers too, so no prefix scan here
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	f = math.Trunc(f)
	if f < float64(math.MinInt) || f >= -float64(math.MinInt) {
		return nil
	}
	n := int(f)
	return &n
}

// parseIntPrefix reads an optional sign and the leading decimal digits of s,
// ignoring leading whitespace and anything after the digits.
func parseIntPrefix(s string) (int, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
