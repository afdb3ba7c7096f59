// Copyright (c) 2026 Code2Lead. All rights reserved.

// Package query parses list-style values from query strings and environment variables.
package query

import "strings"

// StringSlice splits a comma-separated value into trimmed, non-empty parts.
// It returns nil for an empty input.
func StringSlice(val string) []string {
	if val == "" {
		return nil
	}

	var parts []string
	for _, v := range strings.Split(val, ",") {
		if clean := strings.TrimSpace(v); clean != "" {
			parts = append(parts, clean)
		}
	}
	return parts
}
