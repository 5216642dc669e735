// This file is part of go-typedopt.
//
// Copyright (C) 2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package typedopt

import (
	"github.com/agext/levenshtein"
)

// suggestionDistance - Maximum edit distance for a declared name to be suggested.
const suggestionDistance = 2

// suggest - Returns the declared name closest to the given one.
// Ties keep the first name in declaration order.
func suggest(name string, declared []string) (string, bool) {
	if name == "" {
		return "", false
	}
	best := ""
	bestDistance := suggestionDistance + 1
	for _, d := range declared {
		dist := levenshtein.Distance(name, d, nil)
		if dist < bestDistance {
			best = d
			bestDistance = dist
		}
	}
	return best, best != ""
}
