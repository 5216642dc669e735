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
)

// Definition - Type independent view of an Option used by the parser and the help output.
//
// It can only be implemented by the Option type of this package.
type Definition interface {
	Name() string
	Placeholder() string
	Description() string
	IsRequired() bool
	IsSet() bool
	// IsBool - Indicates the option can be given without a value, --name means true.
	IsBool() bool
	// DefaultString - Rendered default value, empty for required options.
	DefaultString() string
	// ValidValues - Accepted arguments when the converter has a closed set of them.
	ValidValues() []string

	save(arg string) error
	saveFlag()
}

// ModifyFn - Function signature for functions that modify an option.
type ModifyFn func(*settings)

type settings struct {
	placeholder string
	description string
}

// Placeholder - Sets the name shown for the option's value in the help output.
// Defaults to the option name upper cased.
func Placeholder(s string) ModifyFn {
	return func(o *settings) {
		o.placeholder = s
	}
}

// Description - Sets the description used in the help output.
func Description(s string) ModifyFn {
	return func(o *settings) {
		o.description = s
	}
}

// Option - Named, typed slot filled in by Parse.
//
// Optional options start with their default value, required options start
// with the zero value of T. Check IsSet before trusting the value of a
// required option.
type Option[T any] struct {
	settings
	name       string
	required   bool
	def        T
	hasDefault bool
	value      T
	called     bool // Indicates if the option was passed on the command line
	conv       Converter[T]
}

var _ Definition = (*Option[string])(nil)

// Required - Declares a required option, it has no default and starts unset.
//
// It will *panic* if the name is empty or the converter is nil.
func Required[T any](name string, conv Converter[T], fns ...ModifyFn) *Option[T] {
	o := newOption(name, conv, fns)
	o.required = true
	return o
}

// Optional - Declares an optional option, its value is def until the option is given.
//
// It will *panic* if the name is empty or the converter is nil.
func Optional[T any](name string, conv Converter[T], def T, fns ...ModifyFn) *Option[T] {
	o := newOption(name, conv, fns)
	o.def = def
	o.hasDefault = true
	o.value = def
	return o
}

func newOption[T any](name string, conv Converter[T], fns []ModifyFn) *Option[T] {
	if name == "" {
		panic("Option name can't be empty")
	}
	if conv == nil {
		panic(fmt.Sprintf("Option '%s' has no converter", name))
	}
	o := &Option[T]{name: name, conv: conv}
	for _, fn := range fns {
		fn(&o.settings)
	}
	return o
}

// String - Declares an optional string option.
func String(name, def string, fns ...ModifyFn) *Option[string] {
	return Optional(name, StringConverter(), def, fns...)
}

// RequiredString - Declares a required string option.
func RequiredString(name string, fns ...ModifyFn) *Option[string] {
	return Required(name, StringConverter(), fns...)
}

// Bool - Declares an optional bool option.
func Bool(name string, def bool, fns ...ModifyFn) *Option[bool] {
	return Optional(name, BoolConverter(), def, fns...)
}

// Int - Declares an optional int option.
func Int(name string, def int, fns ...ModifyFn) *Option[int] {
	return Optional(name, IntConverter[int](), def, fns...)
}

// RequiredInt - Declares a required int option.
func RequiredInt(name string, fns ...ModifyFn) *Option[int] {
	return Required(name, IntConverter[int](), fns...)
}

// Float64 - Declares an optional float64 option.
func Float64(name string, def float64, fns ...ModifyFn) *Option[float64] {
	return Optional(name, FloatConverter[float64](), def, fns...)
}

// RequiredFloat64 - Declares a required float64 option.
func RequiredFloat64(name string, fns ...ModifyFn) *Option[float64] {
	return Required(name, FloatConverter[float64](), fns...)
}

// Enum - Declares an optional option whose value is looked up in the given ValueMap.
func Enum[T comparable](name string, values *ValueMap[T], def T, fns ...ModifyFn) *Option[T] {
	return Optional[T](name, values, def, fns...)
}

// RequiredEnum - Declares a required option whose value is looked up in the given ValueMap.
func RequiredEnum[T comparable](name string, values *ValueMap[T], fns ...ModifyFn) *Option[T] {
	return Required[T](name, values, fns...)
}

// Name - Option name as used on the command line without the leading dashes.
func (o *Option[T]) Name() string { return o.name }

// Placeholder - Declared placeholder, empty when none was given.
func (o *Option[T]) Placeholder() string { return o.placeholder }

// Description - Declared description.
func (o *Option[T]) Description() string { return o.description }

// IsRequired - Indicates the option was declared with Required.
func (o *Option[T]) IsRequired() bool { return o.required }

// IsSet - Indicates if the option was passed on the command line.
// An optional option holding its default value is not set.
func (o *Option[T]) IsSet() bool { return o.called }

// Get - Current value.
// For a required option that is not set this is the zero value of T.
func (o *Option[T]) Get() T { return o.value }

// Default - Default value and whether the option has one.
func (o *Option[T]) Default() (T, bool) { return o.def, o.hasDefault }

// IsBool - Definition implementation.
func (o *Option[T]) IsBool() bool {
	return reflect.TypeOf((*T)(nil)).Elem().Kind() == reflect.Bool
}

// DefaultString - Definition implementation.
func (o *Option[T]) DefaultString() string {
	if !o.hasDefault {
		return ""
	}
	return formatValue(o.conv, o.def)
}

// ValidValues - Definition implementation.
func (o *Option[T]) ValidValues() []string {
	if l, ok := o.conv.(ValueLister); ok {
		return l.Aliases()
	}
	return nil
}

// String - Current value followed by " (unset)" when the option wasn't given.
func (o *Option[T]) String() string {
	s := formatValue(o.conv, o.value)
	if !o.called {
		s += " (unset)"
	}
	return s
}

// save - Converts the argument and stores it, the previous value is overwritten.
// On error the option is left untouched.
func (o *Option[T]) save(arg string) error {
	v, err := o.conv.Convert(arg)
	if err != nil {
		return err
	}
	o.value = v
	o.called = true
	return nil
}

// saveFlag - Handles a bool option given without a value.
func (o *Option[T]) saveFlag() {
	reflect.ValueOf(&o.value).Elem().SetBool(true)
	o.called = true
}
