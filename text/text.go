// This file is part of go-typedopt.
//
// Copyright (C) 2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package text - User facing strings.
//
// The variables can be overridden to translate or customize the messages.
package text

// ErrorDuplicateOptionName holds the text for an option declared twice.
// It has a string placeholder '%s' for the name of the option.
var ErrorDuplicateOptionName = "Option '%s' is defined more than once"

// ErrorUnknownOption holds the text for an option that wasn't declared.
// It has a string placeholder '%s' for the name of the option.
var ErrorUnknownOption = "Unknown option '--%s'"

// ErrorNotAnOption holds the text for a cli argument that doesn't start with the option prefix.
// It has a string placeholder '%s' for the cli argument.
var ErrorNotAnOption = "Unexpected argument '%s', options must be given as --name=value"

// SuggestionSuffix holds the text appended to unknown option errors when a close match exists.
// It has a string placeholder '%s' for the suggested option.
var SuggestionSuffix = ", did you mean '--%s'?"

// ErrorInvalidValue holds the text for a value that can't be converted.
// It has a string placeholder '%s' for the name of the option, the conversion error follows it.
var ErrorInvalidValue = "Invalid value for option '--%s': "

// ErrorMissingArgument holds the text for missing argument error.
// It has a string placeholder '%s' for the name of the option missing the argument.
var ErrorMissingArgument = "Missing argument for option '--%s'!"

// ErrorArgumentWithDash holds the text for missing argument error in cases where the next argument looks like an option (starts with '--').
// It has a string placeholder '%s' for the name of the option missing the argument.
var ErrorArgumentWithDash = "Missing argument for option '--%s'!\n" +
	"If passing arguments that start with '--' use --option=--argument"

// ErrorMissingRequiredOption holds the text for missing required option error.
// It has a string placeholder '%s' for the name of the missing option.
var ErrorMissingRequiredOption = "Missing required option '--%s'!"

// ErrorConvertToInt holds the text for Int Coversion error.
// It has a string placeholder '%s' for the argument.
var ErrorConvertToInt = "Can't convert string to int: '%s'"

// ErrorConvertToUint holds the text for unsigned Int Coversion error.
// It has a string placeholder '%s' for the argument.
var ErrorConvertToUint = "Can't convert string to unsigned int: '%s'"

// ErrorConvertToFloat holds the text for Float Coversion error.
// It has a string placeholder '%s' for the argument.
var ErrorConvertToFloat = "Can't convert string to float: '%s'"

// ErrorConvertToBool holds the text for Bool Coversion error.
// It has a string placeholder '%s' for the argument.
var ErrorConvertToBool = "Can't convert string to bool: '%s'"

// ErrorUnknownEnumValue holds the text for a value missing from the value map.
// It has string placeholders for the argument and the list of valid values.
var ErrorUnknownEnumValue = "Unknown value '%s', valid values are %q"

// HelpUsageHeader - Synopsis prefix.
var HelpUsageHeader = "Usage"

// HelpRequired - Marker used in the option list for required options.
var HelpRequired = "required"

// HelpOptional - Marker used in the option list for optional options.
var HelpOptional = "optional"

// HelpDefault - Label for the default value of optional options.
var HelpDefault = "default"

// HelpValidValues - Label for the list of accepted enumeration values.
var HelpValidValues = "one of"
