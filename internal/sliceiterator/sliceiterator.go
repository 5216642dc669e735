// This file is part of go-typedopt.
//
// Copyright (C) 2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package sliceiterator - builds a read only iterator over a slice that allows peeking at the next value.
package sliceiterator

// Iterator - iterator data
type Iterator[T any] struct {
	data []T
	idx  int
}

// New - builds an Iterator positioned before the first element.
// The slice is never modified.
func New[T any](s []T) *Iterator[T] {
	return &Iterator[T]{data: s, idx: -1}
}

// Size - returns Iterator size
func (a *Iterator[T]) Size() int {
	return len(a.data)
}

// Index - return current index.
func (a *Iterator[T]) Index() int {
	return a.idx
}

// Next - moves the index forward and returns a bool to indicate if there is another value.
func (a *Iterator[T]) Next() bool {
	if a.idx < len(a.data) {
		a.idx++
	}
	return a.idx < len(a.data)
}

// Value - returns value at current index or the zero value if the iterator is exhausted.
func (a *Iterator[T]) Value() T {
	if a.idx < 0 || a.idx >= len(a.data) {
		var zero T
		return zero
	}
	return a.data[a.idx]
}

// PeekNextValue - Returns the next value and indicates whether or not it is valid.
func (a *Iterator[T]) PeekNextValue() (T, bool) {
	if a.idx+1 >= len(a.data) {
		var zero T
		return zero, false
	}
	return a.data[a.idx+1], true
}
