// Copyright (c) 2026 BlockBatch Team
// BlockBatch - batch payment settings console
// This source code is licensed under the MIT license found in the LICENSE file.

// Package slicest holds small generic slice helpers used by the TUI
// components.
package slicest

// Reduce

// Reduce reduces slice S to type U, starting from U's zero value.
func Reduce[T any, S ~[]T, U any](s S, fn func(T, U) U) U {
	var zero U
	return ReduceD(s, zero, fn)
}

// ReduceD reduces slice S to type U using explicit initial value.
// - D: Uses init parameter as starting accumulator.
func ReduceD[T any, S ~[]T, U any](s S, init U, fn func(T, U) U) U {
	for _, t := range s {
		init = fn(t, init)
	}
	return init
}

// Map

// MapI maps every element of S through fn.
// - I: Provides index to callback.
func MapI[T, U any, S ~[]T](s S, fn func(int, T) U) []U {
	result := make([]U, len(s))
	for i, t := range s {
		result[i] = fn(i, t)
	}
	return result
}

// Map maps every element of S through fn.
func Map[T, U any, S ~[]T](s S, fn func(T) U) []U {
	return MapI(s, func(_ int, t T) U {
		return fn(t)
	})
}
