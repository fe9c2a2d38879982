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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// SegmentPoint is one vertex of a segment outline, expressed as three
// independent contributions which are combined linearly at draw time:
//
//	vertex = halfCellSize ⊙ Pos + thickness·Thickness + gap·Gap
//
// Pos is a unit position in a coordinate frame where the cell spans
// [-1,1]×[-1,1]. Thickness accounts for corner bevelling under variable
// stroke width, Gap for the visual separation between adjacent segments.
// This decomposition is what lets a single base shape serve arbitrary
// stroke thicknesses and gaps without re-deriving its geometry.
type SegmentPoint struct {
	Pos       vec.Vec2
	Thickness vec.Vec2
	Gap       vec.Vec2
}

// DrawingOptions bundles the per-render geometry parameters.
//
// Width and Height give the cell size; Gap and Thickness are in the same
// units. PosTransform is applied to the scaled position before the gap
// offset is added (used to compose a base shape's own internal symmetry),
// Transform is applied last (used to mirror a base shape into its sibling
// segments). Zero-value matrices are treated as the identity.
type DrawingOptions struct {
	Width     float64
	Height    float64
	Gap       float64
	Thickness float64

	PosTransform matrix.Matrix
	Transform    matrix.Matrix
}

// DefaultDrawingOptions returns drawing options for a 100×200 cell with
// a 2 unit gap and a 12 unit stroke.
func DefaultDrawingOptions() DrawingOptions {
	return DrawingOptions{
		Width:        100,
		Height:       200,
		Gap:          2,
		Thickness:    12,
		PosTransform: matrix.Identity,
		Transform:    matrix.Identity,
	}
}

// WithTransform returns a copy of opt whose final transform first applies
// m and then the previous transform.
func (opt DrawingOptions) WithTransform(m matrix.Matrix) DrawingOptions {
	opt.Transform = mulMatrix(orIdentity(opt.Transform), m)
	return opt
}

// orIdentity maps the zero matrix to the identity.
func orIdentity(m matrix.Matrix) matrix.Matrix {
	if m == (matrix.Matrix{}) {
		return matrix.Identity
	}
	return m
}

// mulMatrix composes two affine matrices so that the result applies b
// first and then a.
func mulMatrix(a, b matrix.Matrix) matrix.Matrix {
	return matrix.Matrix{
		a[0]*b[0] + a[2]*b[1],
		a[1]*b[0] + a[3]*b[1],
		a[0]*b[2] + a[2]*b[3],
		a[1]*b[2] + a[3]*b[3],
		a[0]*b[4] + a[2]*b[5] + a[4],
		a[1]*b[4] + a[3]*b[5] + a[5],
	}
}

// applyMatrix transforms v by the affine matrix m.
func applyMatrix(m matrix.Matrix, v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y + m[4],
		Y: m[1]*v.X + m[3]*v.Y + m[5],
	}
}

// Outline returns the closed polygon outline of the given segment, in cell
// coordinates centred on the cell (add half the cell size to obtain
// positions relative to the cell's top-left corner). The first point
// implicitly connects back to the last; callers close the polygon.
//
// For SegDP the result is nil: the decimal point has no outline yet and
// lit DP bits render as nothing.
//
// Indexing with a Segment value outside [0, SegmentCount) panics; such a
// value can only come from a broken conversion, never from user input.
func Outline(seg Segment, opt DrawingOptions) []vec.Vec2 {
	return AppendOutline(nil, seg, opt)
}

// AppendOutline appends the outline of seg to dst and returns the extended
// slice. See [Outline] for the coordinate conventions.
func AppendOutline(dst []vec.Vec2, seg Segment, opt DrawingOptions) []vec.Vec2 {
	instr := &segmentInstructions[seg]
	if len(instr.points) == 0 {
		return dst
	}

	pre := orIdentity(opt.PosTransform)
	post := mulMatrix(orIdentity(opt.Transform), instr.mirror)

	hw := opt.Width / 2
	hh := opt.Height / 2

	for _, p := range instr.points {
		v := vec.Vec2{
			X: hw*p.Pos.X + opt.Thickness*p.Thickness.X,
			Y: hh*p.Pos.Y + opt.Thickness*p.Thickness.Y,
		}
		v = applyMatrix(pre, v)
		v.X += opt.Gap * p.Gap.X
		v.Y += opt.Gap * p.Gap.Y
		dst = append(dst, applyMatrix(post, v))
	}
	return dst
}
