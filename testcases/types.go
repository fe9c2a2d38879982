// seehuhn.de/go/segdisp - a simulated segment display renderer
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package testcases defines a registry of display rendering scenarios,
// shared between the package tests and the genpdf specimen generator.
package testcases

import (
	"math"

	"seehuhn.de/go/segdisp"
)

// TestCase describes one specimen: a line of text rendered under fixed
// cell options.
type TestCase struct {
	Name    string // lowercase a-z, 0-9 and _ only
	Text    string // rendered one cell per rune
	Options segdisp.DigitOptions
}

// Spacing is the horizontal distance between adjacent cells in rendered
// specimens, in pixels.
const Spacing = 8

// ImageSize returns the pixel dimensions of the rendered specimen.
func (tc TestCase) ImageSize() (width, height int) {
	n := len([]rune(tc.Text))
	if n == 0 {
		return 0, 0
	}
	cw := int(math.Round(tc.Options.Width))
	ch := int(math.Round(tc.Options.Height))
	return n*cw + (n-1)*Spacing, ch
}
