// This file is part of go-typedopt.
//
// Copyright (C) 2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package typedopt

import (
	"io"

	"github.com/DavidGamba/go-typedopt/internal/help"
)

// Formatter - Usage message configuration.
type Formatter struct {
	// Width wraps the option details to the given number of columns, 0 disables wrapping.
	Width int
}

// Usage - Writes the usage message with a zero Formatter.
func Usage(w io.Writer, programName string, required, optional Options) error {
	return Formatter{}.Usage(w, programName, required, optional)
}

// UsageString - Returns the usage message with a zero Formatter.
func UsageString(programName string, required, optional Options) string {
	return Formatter{}.String(programName, required, optional)
}

// Usage - Writes the usage message to w.
func (f Formatter) Usage(w io.Writer, programName string, required, optional Options) error {
	_, err := io.WriteString(w, f.String(programName, required, optional))
	return err
}

// String - Synopsis line followed by one line per option, required options first.
// Options are only read, it is safe to call at any time.
func (f Formatter) String(programName string, required, optional Options) string {
	entries := make([]help.Entry, 0, len(required)+len(optional))
	for _, opt := range required {
		entries = append(entries, entry(opt, true))
	}
	for _, opt := range optional {
		entries = append(entries, entry(opt, false))
	}
	return help.Synopsis(programName, entries) + help.OptionList(entries, f.Width)
}

// ArgName - Name shown for the option's value in the help output.
// It is the declared placeholder or the option name upper cased.
func ArgName(opt Definition) string {
	return help.ArgName(opt.Name(), opt.Placeholder())
}

func entry(opt Definition, required bool) help.Entry {
	e := help.Entry{
		Name:        opt.Name(),
		Placeholder: opt.Placeholder(),
		Description: opt.Description(),
		Required:    required,
		Bool:        opt.IsBool(),
		ValidValues: opt.ValidValues(),
	}
	if !required {
		e.Default = opt.DefaultString()
	}
	return e
}
