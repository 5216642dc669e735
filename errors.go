// This file is part of go-typedopt.
//
// Copyright (C) 2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package typedopt

import (
	"errors"
)

// ErrorDuplicateOptionName - Two declared options share a name.
var ErrorDuplicateOptionName = errors.New("")

// ErrorUnknownOption - A cli argument names an option that wasn't declared.
var ErrorUnknownOption = errors.New("")

// ErrorInvalidValue - The value given to an option can't be converted to the option's type.
var ErrorInvalidValue = errors.New("")

// ErrorMissingArgument - An option that requires a value was given none.
var ErrorMissingArgument = errors.New("")

// ErrorMissingRequiredOption - A required option was not set by the end of parsing.
var ErrorMissingRequiredOption = errors.New("")

// ErrorConversion - Returned by the built-in converters when the argument is not a valid literal.
var ErrorConversion = errors.New("")

// ErrorUnknownEnumValue - Returned by ValueMap when the argument is not one of its aliases.
var ErrorUnknownEnumValue = errors.New("")

// IsHardFailure - Indicates whether the error aborts parsing.
// A missing required option on its own is not a hard failure.
func IsHardFailure(err error) bool {
	return errors.Is(err, ErrorDuplicateOptionName) ||
		errors.Is(err, ErrorUnknownOption) ||
		errors.Is(err, ErrorInvalidValue) ||
		errors.Is(err, ErrorMissingArgument)
}
