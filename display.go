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

package segdisp

import (
	"image/color"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// DigitOptions holds the user-facing parameters of one display cell.
//
// Width and Height give the cell size in pixels; Gap and Thickness are in
// the same units. Slant is reserved for future use and currently ignored.
// Fill is the colour lit segments are painted with.
type DigitOptions struct {
	Width     float64
	Height    float64
	Gap       float64
	Thickness float64
	Slant     float64
	Fill      color.Color
}

// DefaultDigitOptions returns the options of a 40×80 cell with a red fill.
func DefaultDigitOptions() DigitOptions {
	return DigitOptions{
		Width:     40,
		Height:    80,
		Gap:       1.3,
		Thickness: 5.7,
		Fill:      color.RGBA{R: 255, A: 255},
	}
}

// drawing converts the cell options to geometry generator options.
func (opt DigitOptions) drawing() DrawingOptions {
	return DrawingOptions{
		Width:     opt.Width,
		Height:    opt.Height,
		Gap:       opt.Gap,
		Thickness: opt.Thickness,
	}
}

// Polygon is one filled segment outline produced by a render call. The
// points are in cell coordinates centred on the cell; the first point
// implicitly connects back to the last.
type Polygon struct {
	Segment Segment
	Points  []vec.Vec2
	Fill    color.Color
}

// DigitDisplay is one character position of the display. It owns the
// current cell options and a per-segment cache of computed outlines.
//
// A DigitDisplay is not safe for concurrent use: the cache is mutated by
// [DigitDisplay.Render]. Hosts rendering from several goroutines must use
// one cell per goroutine or serialize access externally.
type DigitDisplay struct {
	options DigitOptions

	// One cache slot per segment, each independently empty or holding the
	// outline computed under the current options. cached distinguishes a
	// computed empty outline (the decimal point) from an empty slot.
	outlines [SegmentCount][]vec.Vec2
	cached   [SegmentCount]bool
}

// NewDigitDisplay returns a cell with the given options and an empty
// geometry cache.
func NewDigitDisplay(options DigitOptions) *DigitDisplay {
	return &DigitDisplay{options: options}
}

// Options returns a copy of the current cell options.
func (d *DigitDisplay) Options() DigitOptions {
	return d.options
}

// SetOptions replaces the cell options, invalidating all cached outlines.
func (d *DigitDisplay) SetOptions(options DigitOptions) {
	d.clearCache()
	d.options = options
}

// ModifyOptions applies modify to the cell options in place. The cache is
// cleared before modify runs: the cache slots carry no parameter key, so
// any option change must conservatively drop all seventeen outlines before
// the new options take effect, or a later render could reuse geometry
// computed under the old parameters.
func (d *DigitDisplay) ModifyOptions(modify func(*DigitOptions)) {
	d.clearCache()
	modify(&d.options)
}

func (d *DigitDisplay) clearCache() {
	for i := range d.outlines {
		d.outlines[i] = nil
		d.cached[i] = false
	}
}

// outline returns the cached outline for seg, computing and caching it if
// necessary.
func (d *DigitDisplay) outline(seg Segment) []vec.Vec2 {
	if !d.cached[seg] {
		d.outlines[seg] = Outline(seg, d.options.drawing())
		d.cached[seg] = true
	}
	return d.outlines[seg]
}

// Render returns one filled polygon per lit segment, using cached
// outlines where available. Unlit segments emit nothing, and segments
// with no outline (the decimal point) are skipped even when lit. Empty
// bits short-circuit to nil without touching the cache.
//
// The returned point slices are copies; callers may modify them without
// affecting later renders.
func (d *DigitDisplay) Render(bits SegmentBits) []Polygon {
	if bits.IsEmpty() {
		return nil
	}

	polys := make([]Polygon, 0, SegmentCount)
	for i := range SegmentCount {
		seg := Segment(i)
		if !bits.Contains(seg) {
			continue
		}
		pts := d.outline(seg)
		if len(pts) == 0 {
			continue
		}
		polys = append(polys, Polygon{
			Segment: seg,
			Points:  slices.Clone(pts),
			Fill:    d.options.Fill,
		})
	}
	return polys
}

// Path returns the lit segment outlines as a single multi-subpath path in
// cell coordinates centred on the cell, suitable for any path consumer in
// the seehuhn.de/go ecosystem. The path re-reads the cell on every
// iteration, so it reflects option changes made after the call.
func (d *DigitDisplay) Path(bits SegmentBits) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for _, poly := range d.Render(bits) {
			if !yield(path.CmdMoveTo, poly.Points[:1]) {
				return
			}
			for i := 1; i < len(poly.Points); i++ {
				if !yield(path.CmdLineTo, poly.Points[i:i+1]) {
					return
				}
			}
			if !yield(path.CmdClose, nil) {
				return
			}
		}
	}
}
