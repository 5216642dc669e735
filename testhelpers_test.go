// This file is part of go-typedopt.
//
// Copyright (C) 2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package typedopt

import (
	"bytes"
	"testing"
)

type mode int

const (
	oneShot mode = iota
	repeat
)

var modes = NewValueMap(
	Alias[mode]{Name: "oneshot", Value: oneShot},
	Alias[mode]{Name: "after", Value: oneShot},
	Alias[mode]{Name: "repeat", Value: repeat},
	Alias[mode]{Name: "every", Value: repeat},
)

type unit int

const (
	second unit = iota
	minute
	hour
)

var units = NewValueMap(
	Alias[unit]{Name: "seconds", Value: second},
	Alias[unit]{Name: "sec", Value: second},
	Alias[unit]{Name: "s", Value: second},
	Alias[unit]{Name: "minutes", Value: minute},
	Alias[unit]{Name: "m", Value: minute},
	Alias[unit]{Name: "hours", Value: hour},
	Alias[unit]{Name: "hr", Value: hour},
	Alias[unit]{Name: "h", Value: hour},
)

// timerOptions - declarations used across the tests.
type timerOptions struct {
	cmd         *Option[string]
	mode        *Option[mode]
	timeout     *Option[float32]
	unit        *Option[unit]
	quiet       *Option[bool]
	stopOnError *Option[bool]
	until       *Option[float32]
	times       *Option[uint64]
}

func newTimerOptions() *timerOptions {
	return &timerOptions{
		cmd:         RequiredString("cmd", Placeholder("COMMAND")),
		mode:        RequiredEnum("mode", modes),
		timeout:     Required("timeout", FloatConverter[float32](), Placeholder("TIMEOUT")),
		unit:        RequiredEnum("unit", units),
		quiet:       Bool("quiet", false),
		stopOnError: Bool("stop_on_error", false),
		until:       Optional("until", FloatConverter[float32](), 0, Placeholder("TIME")),
		times:       Optional("times", UintConverter[uint64](), 0),
	}
}

func (o *timerOptions) required() Options {
	return Options{o.cmd, o.mode, o.timeout, o.unit}
}

func (o *timerOptions) optional() Options {
	return Options{o.quiet, o.stopOnError, o.until, o.times}
}

// setupTestLogging - Defines an output for the default Logger and returns a
// function that prints the output if the output is not empty.
//
// Usage:
//
//	logTestOutput := setupTestLogging(t)
//	defer logTestOutput()
func setupTestLogging(t *testing.T) func() {
	buf := bytes.NewBufferString("")
	Logger.SetOutput(buf)
	return func() {
		if len(buf.String()) > 0 {
			t.Log("\n" + buf.String())
		}
	}
}

// testParser - Parser writing its diagnostics to the returned buffer.
func testParser() (*Parser, *bytes.Buffer) {
	buf := new(bytes.Buffer)
	p := New()
	p.Writer = buf
	return p, buf
}
