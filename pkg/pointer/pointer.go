// Copyright (c) 2026 Code2Lead. All rights reserved.

/*
Package pointer provides generic helpers for optional values.

Nullable columns scan into pointers and partial updates arrive as pointers;
these helpers keep the conversions out of the business code.
*/
package pointer

// To returns a pointer to a copy of v (e.g. pointer.To("Ada")).
func To[T any](v T) *T {
	return &v
}

// Val dereferences p, returning the zero value of T when p is nil.
func Val[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
