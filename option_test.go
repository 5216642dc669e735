// This file is part of go-typedopt.
//
// Copyright (C) 2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package typedopt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionDefaults(t *testing.T) {
	o := newTimerOptions()

	for _, opt := range o.optional() {
		assert.False(t, opt.IsSet(), opt.Name())
		assert.False(t, opt.IsRequired(), opt.Name())
	}
	assert.Equal(t, false, o.quiet.Get())
	assert.Equal(t, float32(0), o.until.Get())
	def, ok := o.until.Default()
	assert.True(t, ok)
	assert.Equal(t, float32(0), def)

	for _, opt := range o.required() {
		assert.False(t, opt.IsSet(), opt.Name())
		assert.True(t, opt.IsRequired(), opt.Name())
		assert.Equal(t, "", opt.DefaultString(), opt.Name())
	}
	_, ok = o.cmd.Default()
	assert.False(t, ok)
	assert.Equal(t, "", o.cmd.Get())
	assert.Equal(t, oneShot, o.mode.Get())
}

func TestOptionConstructors(t *testing.T) {
	tests := []struct {
		name        string
		opt         Definition
		placeholder string
		required    bool
		isBool      bool
		def         string
	}{
		{"required", RequiredString("cmd"), "", true, false, ""},
		{"required with placeholder", RequiredString("cmd", Placeholder("COMMAND")), "COMMAND", true, false, ""},
		{"optional", String("name", "world"), "", false, false, "world"},
		{"optional with placeholder", Float64("until", 1.5, Placeholder("TIME")), "TIME", false, false, "1.5"},
		{"bool", Bool("quiet", true), "", false, true, "true"},
		{"int", Int("times", 3), "", false, false, "3"},
		{"required int", RequiredInt("times"), "", true, false, ""},
		{"required float", RequiredFloat64("timeout"), "", true, false, ""},
		{"enum", Enum("mode", modes, repeat), "", false, false, "repeat"},
		{"required enum", RequiredEnum("unit", units, Placeholder("UNIT")), "UNIT", true, false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.placeholder, tt.opt.Placeholder())
			assert.Equal(t, tt.required, tt.opt.IsRequired())
			assert.Equal(t, tt.isBool, tt.opt.IsBool())
			assert.Equal(t, tt.def, tt.opt.DefaultString())
			assert.False(t, tt.opt.IsSet())
		})
	}
}

func TestOptionDescription(t *testing.T) {
	opt := RequiredString("cmd", Description("Command to run."), Placeholder("COMMAND"))
	assert.Equal(t, "cmd", opt.Name())
	assert.Equal(t, "Command to run.", opt.Description())
	assert.Equal(t, "COMMAND", opt.Placeholder())
	assert.Equal(t, "COMMAND", ArgName(opt))
	assert.Equal(t, "TIMES", ArgName(Int("times", 0)))
}

func TestOptionValidValues(t *testing.T) {
	assert.Equal(t, []string{"oneshot", "after", "repeat", "every"}, RequiredEnum("mode", modes).ValidValues())
	assert.Nil(t, RequiredString("cmd").ValidValues())
	assert.Nil(t, Bool("quiet", false).ValidValues())
}

func TestOptionSave(t *testing.T) {
	opt := Enum("mode", modes, oneShot)
	require.NoError(t, opt.save("every"))
	assert.True(t, opt.IsSet())
	assert.Equal(t, repeat, opt.Get())

	// Overwrite, last one wins.
	require.NoError(t, opt.save("after"))
	assert.Equal(t, oneShot, opt.Get())

	// A failed conversion leaves the option untouched.
	timeout := RequiredFloat64("timeout")
	require.Error(t, timeout.save("notanumber"))
	assert.False(t, timeout.IsSet())
	assert.Equal(t, 0.0, timeout.Get())

	quiet := Bool("quiet", false)
	quiet.saveFlag()
	assert.True(t, quiet.IsSet())
	assert.True(t, quiet.Get())
}

func TestOptionString(t *testing.T) {
	o := newTimerOptions()
	assert.Equal(t, " (unset)", o.cmd.String())
	assert.Equal(t, "oneshot (unset)", o.mode.String())
	assert.Equal(t, "false (unset)", o.quiet.String())
	assert.Equal(t, "0 (unset)", o.times.String())

	require.NoError(t, o.cmd.save("ls"))
	require.NoError(t, o.unit.save("hr"))
	require.NoError(t, o.timeout.save("1.5"))
	assert.Equal(t, "ls", o.cmd.String())
	assert.Equal(t, "hours", o.unit.String())
	assert.Equal(t, "1.5", o.timeout.String())
}

func TestOptionPanics(t *testing.T) {
	assert.PanicsWithValue(t, "Option name can't be empty", func() {
		RequiredString("")
	})
	assert.PanicsWithValue(t, "Option 'cmd' has no converter", func() {
		Required[string]("cmd", nil)
	})
}
