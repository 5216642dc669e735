// This file is part of go-typedopt.
//
// Copyright (C) 2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package help

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func entries() []Entry {
	return []Entry{
		{Name: "cmd", Placeholder: "COMMAND", Required: true, Description: "Command to run."},
		{Name: "mode", Required: true, ValidValues: []string{"oneshot", "after", "repeat", "every"}},
		{Name: "quiet", Bool: true, Default: "false"},
		{Name: "until", Placeholder: "TIME", Default: "0"},
	}
}

func TestArgName(t *testing.T) {
	tests := []struct {
		name        string
		option      string
		placeholder string
		expected    string
	}{
		{"placeholder", "cmd", "COMMAND", "COMMAND"},
		{"upper cased name", "timeout", "", "TIMEOUT"},
		{"underscores are kept", "stop_on_error", "", "STOP_ON_ERROR"},
		{"placeholder is used verbatim", "until", "time", "time"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ArgName(tt.option, tt.placeholder)
			if got != tt.expected {
				t.Errorf("ArgName(%q, %q) = %q, want %q", tt.option, tt.placeholder, got, tt.expected)
			}
		})
	}
}

func TestHelp(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"Synopsis empty", Synopsis("timer", nil), "Usage: timer\n"},
		{
			"Synopsis", Synopsis("timer", entries()),
			"Usage: timer --cmd=COMMAND --mode=MODE [--quiet] [--until=TIME]\n",
		},
		{
			"Synopsis bool with placeholder", Synopsis("timer", []Entry{
				{Name: "verbose", Bool: true, Placeholder: "BOOL", Default: "false"},
				{Name: "force", Bool: true, Required: true},
			}),
			"Usage: timer [--verbose=BOOL] --force\n",
		},
		{"OptionList nil", OptionList(nil, 0), ""},
		{
			"OptionList", OptionList(entries(), 0),
			`    --cmd=COMMAND    (required) Command to run.
    --mode=MODE      (required) [one of: oneshot, after, repeat, every]
    --quiet          (optional, default: false)
    --until=TIME     (optional, default: 0)
`,
		},
		{
			"OptionList empty default", OptionList([]Entry{{Name: "name"}}, 0),
			`    --name=NAME    (optional, default: "")
`,
		},
		{
			"OptionList wrapped", OptionList([]Entry{
				{Name: "cmd", Placeholder: "COMMAND", Required: true, Description: "Run the given command and report its exit status."},
			}, 50),
			`    --cmd=COMMAND    (required) Run the given
                     command and report its exit
                     status.
`,
		},
		{
			"OptionList too narrow to wrap", OptionList([]Entry{
				{Name: "cmd", Placeholder: "COMMAND", Required: true, Description: "Run the given command and report its exit status."},
			}, 30),
			`    --cmd=COMMAND    (required) Run the given command and report its exit status.
`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.expected, tt.got); diff != "" {
				t.Errorf("unexpected output (-want +got):\n%s", diff)
			}
		})
	}
}
