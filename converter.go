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
	"reflect"
	"strconv"

	"github.com/DavidGamba/go-typedopt/text"
	"golang.org/x/exp/constraints"
)

// Converter - Turns a single cli argument into a value of type T.
//
// Errors returned by a Converter should name the argument that failed, they
// are shown to the user prefixed with the option name.
type Converter[T any] interface {
	Convert(arg string) (T, error)
}

// ConverterFunc - Adapter to use an ordinary function as a Converter.
type ConverterFunc[T any] func(arg string) (T, error)

// Convert - Calls f(arg).
func (f ConverterFunc[T]) Convert(arg string) (T, error) {
	return f(arg)
}

// ValueFormatter - Optional Converter capability used to render values in the help output.
// When a Converter doesn't implement it, values are rendered with fmt.Sprint.
type ValueFormatter[T any] interface {
	Format(v T) string
}

// ValueLister - Optional Converter capability that lists the accepted arguments.
type ValueLister interface {
	Aliases() []string
}

// StringConverter - Returns the argument verbatim, it never fails.
func StringConverter() Converter[string] {
	return ConverterFunc[string](func(arg string) (string, error) {
		return arg, nil
	})
}

// BoolConverter - Accepts the literals understood by strconv.ParseBool:
// 1, t, T, TRUE, true, True, 0, f, F, FALSE, false, False.
func BoolConverter() Converter[bool] {
	return ConverterFunc[bool](func(arg string) (bool, error) {
		b, err := strconv.ParseBool(arg)
		if err != nil {
			return false, fmt.Errorf(text.ErrorConvertToBool+"%w", arg, ErrorConversion)
		}
		return b, nil
	})
}

// IntConverter - Base 10 conversion into any signed integer type.
// Values that overflow T are rejected.
func IntConverter[T constraints.Signed]() Converter[T] {
	return ConverterFunc[T](func(arg string) (T, error) {
		var zero T
		i, err := strconv.ParseInt(arg, 10, bitSize(zero))
		if err != nil {
			return zero, fmt.Errorf(text.ErrorConvertToInt+"%w", arg, ErrorConversion)
		}
		return T(i), nil
	})
}

// UintConverter - Base 10 conversion into any unsigned integer type.
// Signs are not accepted.
func UintConverter[T constraints.Unsigned]() Converter[T] {
	return ConverterFunc[T](func(arg string) (T, error) {
		var zero T
		u, err := strconv.ParseUint(arg, 10, bitSize(zero))
		if err != nil {
			return zero, fmt.Errorf(text.ErrorConvertToUint+"%w", arg, ErrorConversion)
		}
		return T(u), nil
	})
}

// FloatConverter - Conversion into float32 or float64 following strconv.ParseFloat.
// Values out of the range of T are rejected.
func FloatConverter[T constraints.Float]() Converter[T] {
	return ConverterFunc[T](func(arg string) (T, error) {
		var zero T
		f, err := strconv.ParseFloat(arg, bitSize(zero))
		if err != nil {
			return zero, fmt.Errorf(text.ErrorConvertToFloat+"%w", arg, ErrorConversion)
		}
		return T(f), nil
	})
}

// bitSize - size in bits of the numeric type, named types included.
func bitSize(v any) int {
	return reflect.TypeOf(v).Bits()
}

// formatValue - renders v with the converter's formatter when it has one.
func formatValue[T any](conv Converter[T], v T) string {
	if f, ok := conv.(ValueFormatter[T]); ok {
		return f.Format(v)
	}
	return fmt.Sprint(v)
}
