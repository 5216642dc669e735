// This file is part of go-typedopt.
//
// Copyright (C) 2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package typedopt

import (
	"fmt"

	"github.com/DavidGamba/go-typedopt/text"
)

// Alias - An entry of a ValueMap.
type Alias[T comparable] struct {
	Name  string
	Value T
}

// ValueMap - Table of aliases used to convert cli arguments into the values of an enumerated type.
// Multiple aliases can map to the same value.
//
// A ValueMap is immutable once built so a single instance can be shared by
// every option of the same type.
//
// For example:
//
//	var modes = typedopt.NewValueMap(
//		typedopt.Alias[Mode]{Name: "oneshot", Value: OneShot},
//		typedopt.Alias[Mode]{Name: "after", Value: OneShot},
//		typedopt.Alias[Mode]{Name: "repeat", Value: Repeat},
//	)
type ValueMap[T comparable] struct {
	aliases []Alias[T]
	index   map[string]T
}

// NewValueMap - Builds a ValueMap from the given aliases, order is preserved for the help output.
//
// It will *panic* if an alias is empty or defined twice.
// This is not an error because the programmer has to fix this!
func NewValueMap[T comparable](aliases ...Alias[T]) *ValueMap[T] {
	m := &ValueMap[T]{
		aliases: make([]Alias[T], 0, len(aliases)),
		index:   make(map[string]T, len(aliases)),
	}
	for _, a := range aliases {
		if a.Name == "" {
			panic("ValueMap alias can't be empty")
		}
		if _, ok := m.index[a.Name]; ok {
			panic(fmt.Sprintf("ValueMap alias '%s' is already defined", a.Name))
		}
		m.index[a.Name] = a.Value
		m.aliases = append(m.aliases, a)
	}
	return m
}

// Lookup - Exact, case sensitive, match of the alias.
func (m *ValueMap[T]) Lookup(alias string) (T, bool) {
	v, ok := m.index[alias]
	return v, ok
}

// Convert - Converter implementation.
func (m *ValueMap[T]) Convert(arg string) (T, error) {
	v, ok := m.index[arg]
	if !ok {
		return v, fmt.Errorf(text.ErrorUnknownEnumValue+"%w", arg, m.Aliases(), ErrorUnknownEnumValue)
	}
	return v, nil
}

// Name - Returns the first alias declared for the value.
func (m *ValueMap[T]) Name(v T) (string, bool) {
	for _, a := range m.aliases {
		if a.Value == v {
			return a.Name, true
		}
	}
	return "", false
}

// Format - ValueFormatter implementation, falls back to fmt.Sprint for values without an alias.
func (m *ValueMap[T]) Format(v T) string {
	if name, ok := m.Name(v); ok {
		return name
	}
	return fmt.Sprint(v)
}

// Aliases - All aliases in declaration order.
func (m *ValueMap[T]) Aliases() []string {
	names := make([]string, 0, len(m.aliases))
	for _, a := range m.aliases {
		names = append(names, a.Name)
	}
	return names
}

// Len - Number of aliases.
func (m *ValueMap[T]) Len() int {
	return len(m.aliases)
}
