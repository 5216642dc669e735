// This file is part of go-typedopt.
//
// Copyright (C) 2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package help - Renders the usage message from the option declarations.
package help

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/DavidGamba/go-typedopt/text"
	"github.com/mitchellh/go-wordwrap"
)

// Padding - Indentation of the option list and space between an option and its details.
var Padding = 4

// minWrapWidth - Below this many columns for the details, wrapping is not attempted.
const minWrapWidth = 20

// Entry - What the help output needs to know about an option.
type Entry struct {
	Name        string
	Placeholder string
	Description string
	Default     string
	Required    bool
	Bool        bool
	ValidValues []string
}

// ArgName - The declared placeholder or the option name upper cased.
func ArgName(name, placeholder string) string {
	if placeholder != "" {
		return placeholder
	}
	return strings.ToUpper(name)
}

// optionSynopsis - `--name=ARG`, or `--name` for bool options without a placeholder.
func optionSynopsis(e Entry) string {
	if e.Bool && e.Placeholder == "" {
		return "--" + e.Name
	}
	return fmt.Sprintf("--%s=%s", e.Name, ArgName(e.Name, e.Placeholder))
}

// Synopsis - Single line with the program name followed by every option.
// Optional options are enclosed in brackets, entries keep the given order.
func Synopsis(programName string, entries []Entry) string {
	out := fmt.Sprintf("%s: %s", text.HelpUsageHeader, programName)
	for _, e := range entries {
		if e.Required {
			out += " " + optionSynopsis(e)
		} else {
			out += " [" + optionSynopsis(e) + "]"
		}
	}
	return out + "\n"
}

// details - required/optional marker, default value, description and accepted values.
func details(e Entry) string {
	var out string
	if e.Required {
		out = fmt.Sprintf("(%s)", text.HelpRequired)
	} else {
		def := e.Default
		if def == "" {
			def = `""`
		}
		out = fmt.Sprintf("(%s, %s: %s)", text.HelpOptional, text.HelpDefault, def)
	}
	if e.Description != "" {
		out += " " + e.Description
	}
	if len(e.ValidValues) > 0 {
		out += fmt.Sprintf(" [%s: %s]", text.HelpValidValues, strings.Join(e.ValidValues, ", "))
	}
	return out
}

// OptionList - One line per option in the given order.
// When width is greater than 0 the details are wrapped to fit in it.
func OptionList(entries []Entry, width int) string {
	factor := 0
	for _, e := range entries {
		if l := len(optionSynopsis(e)); l > factor {
			factor = l
		}
	}
	indent := strings.Repeat(" ", Padding)
	out := ""
	for _, e := range entries {
		prefix := indent + pad(optionSynopsis(e), factor) + indent
		d := details(e)
		if width > 0 && width-len(prefix) >= minWrapWidth {
			d = wordwrap.WrapString(d, uint(width-len(prefix)))
			d = strings.ReplaceAll(d, "\n", "\n"+strings.Repeat(" ", len(prefix)))
		}
		out += prefix + d + "\n"
	}
	return out
}

// pad - Given a string and a padding factor it will return the string padded with spaces.
func pad(s string, factor int) string {
	return fmt.Sprintf("%-"+strconv.Itoa(factor)+"s", s)
}
