// This file is part of go-typedopt.
//
// Copyright (C) 2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package typedopt

import (
	"regexp"
)

// Prefix - Leading characters that mark a cli argument as an option.
const Prefix = "--"

// 1: option name
// 2: =
// 3: arg
var isOptionRegex = regexp.MustCompile(`^` + Prefix + `([^=]*)(=?)(.*)$`)

type optionPair struct {
	Option string
	Arg    string
	HasArg bool // Indicates the argument was given inline with '='
}

/*
isOption - Check if the given string is an option (starts with --).
Return the option name without the leading dashes and its argument if the string contained one.

For example:

	--mode           => {Option: "mode"}
	--mode=repeat    => {Option: "mode", Arg: "repeat", HasArg: true}
	--cmd=a=b        => {Option: "cmd", Arg: "a=b", HasArg: true}
	--cmd=           => {Option: "cmd", Arg: "", HasArg: true}

A lone `--` is reported as an option with an empty name so the caller can flag it as unknown.
*/
func isOption(s string) (optionPair, bool) {
	match := isOptionRegex.FindStringSubmatch(s)
	if match == nil {
		return optionPair{}, false
	}
	return optionPair{
		Option: match[1],
		Arg:    match[3],
		HasArg: match[2] == "=",
	}, true
}
