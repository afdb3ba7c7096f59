// Copyright (c) 2026 Code2Lead. All rights reserved.

// Package slice complements the standard [slices] package with a generic Map.
package slice

// Map projects every element of input through transform.
//
// A nil input yields an empty, non-nil slice so that JSON encodes it as [] rather than null.
func Map[T any, U any](input []T, transform func(T) U) []U {
	result := make([]U, len(input))
	for i, v := range input {
		result[i] = transform(v)
	}
	return result
}
