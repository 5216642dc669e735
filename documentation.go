// This file is part of go-typedopt.
//
// Copyright (C) 2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

/*
Package typedopt - Typed command line options.

A program declares a set of typed options, each one either required or
optional with a default, parses argv style input into them and renders a
usage message from the same declarations.

# Usage

	var modes = typedopt.NewValueMap(
		typedopt.Alias[Mode]{Name: "oneshot", Value: OneShot},
		typedopt.Alias[Mode]{Name: "repeat", Value: Repeat},
	)

	cmd := typedopt.RequiredString("cmd", typedopt.Placeholder("COMMAND"))
	mode := typedopt.RequiredEnum("mode", modes)
	quiet := typedopt.Bool("quiet", false)

	required := typedopt.Options{cmd, mode}
	optional := typedopt.Options{quiet}
	if !typedopt.Parse(required, optional, os.Args[1:]) {
		os.Exit(1)
	}
	if !cmd.IsSet() || !mode.IsSet() {
		typedopt.Usage(os.Stderr, os.Args[0], required, optional)
	}

# Features

* Options are given as `--name=value` or `--name value`.

* Bool options can be given bare, `--quiet` means true.

* Enumerated types are converted through a ValueMap, multiple aliases can
map to the same value.

* Any type can be used by providing a Converter.

* The last occurrence of an option wins.

* Missing required options are reported but by default don't fail the
parse, see Parser.OnMissingRequired.

# Panic

The library will panic if it finds that the programmer defined an empty
option name or the same ValueMap alias twice.
*/
package typedopt
