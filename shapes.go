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
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// The display has four-fold symmetry, so the sixteen outline-bearing
// segments reduce to four geometrically distinct base shapes: the long
// corner stroke (A1), the long side stroke (F), the short centre bar (G1),
// and the star-centre spokes (H diagonal, I vertical). Every segment is
// one base shape passed through one of {identity, mirror-X, mirror-Y,
// mirror-XY}. See
// https://en.wikipedia.org/wiki/Sixteen-segment_display#/media/File:16-segmente.png
// for the segment naming diagram.

// Diagonal gap factors. Bevelled corners meet the gap at 45°, so the
// offsets use 1/√2 and √2 scale factors to keep diagonal cuts visually
// consistent with perpendicular gaps. These constants are exact, not
// tunable.
const (
	dGap      = 0.5 / math.Sqrt2
	dGapInner = math.Sqrt2 / 2
)

var (
	topLeft = vec.Vec2{X: -1, Y: -1}
	top     = vec.Vec2{X: 0, Y: -1}
	left    = vec.Vec2{X: -1, Y: 0}
	mid     = vec.Vec2{}
)

// ShapeA1 is the top-left corner stroke: a horizontal bar with a 45°
// bevel at the outer corner.
var ShapeA1 = [5]SegmentPoint{
	{Pos: topLeft, Thickness: vec.Vec2{X: 0.5, Y: 0.5}, Gap: vec.Vec2{X: dGap, Y: -dGap}},
	{Pos: topLeft, Thickness: vec.Vec2{X: 1}},
	{Pos: top, Gap: vec.Vec2{X: -0.5}},
	{Pos: top, Thickness: vec.Vec2{Y: 1}, Gap: vec.Vec2{X: -0.5}},
	{Pos: topLeft, Thickness: vec.Vec2{X: 1, Y: 1}, Gap: vec.Vec2{X: dGapInner}},
}

// ShapeF is the upper-left side stroke: a vertical bar with a 45° bevel
// at the outer corner and a mitred lower end meeting G1 and the spokes.
var ShapeF = [6]SegmentPoint{
	{Pos: topLeft, Thickness: vec.Vec2{X: 0.5, Y: 0.5}, Gap: vec.Vec2{X: -dGap, Y: dGap}},
	{Pos: topLeft, Thickness: vec.Vec2{X: 1, Y: 1}, Gap: vec.Vec2{Y: dGapInner}},
	{Pos: left, Thickness: vec.Vec2{X: 1, Y: -0.5}, Gap: vec.Vec2{Y: -dGapInner}},
	{Pos: left, Thickness: vec.Vec2{X: 0.5}, Gap: vec.Vec2{X: -0.5, Y: -0.5}},
	{Pos: left, Thickness: vec.Vec2{Y: -0.5}},
	{Pos: topLeft, Thickness: vec.Vec2{Y: 1}},
}

// ShapeG1 is the left half of the horizontal centre bar.
var ShapeG1 = [5]SegmentPoint{
	{Pos: left, Thickness: vec.Vec2{X: 0.5}, Gap: vec.Vec2{X: dGapInner}},
	{Pos: left, Thickness: vec.Vec2{X: 1, Y: -0.5}, Gap: vec.Vec2{X: dGapInner}},
	{Pos: mid, Thickness: vec.Vec2{Y: -0.5}, Gap: vec.Vec2{X: -0.5}},
	{Pos: mid, Thickness: vec.Vec2{Y: 0.5}, Gap: vec.Vec2{X: -0.5}},
	{Pos: left, Thickness: vec.Vec2{X: 1, Y: 0.5}, Gap: vec.Vec2{X: dGapInner}},
}

// ShapeH is the upper-left diagonal spoke, running from the inner corner
// of A1/F towards the cell centre.
var ShapeH = [6]SegmentPoint{
	{Pos: topLeft, Thickness: vec.Vec2{X: 1, Y: 1}, Gap: vec.Vec2{X: 1, Y: 1}},
	{Pos: topLeft, Thickness: vec.Vec2{X: 1.5, Y: 1}, Gap: vec.Vec2{X: 1, Y: 1}},
	{Pos: vec.Vec2{X: 0, Y: -0.5}, Thickness: vec.Vec2{X: -0.5}, Gap: vec.Vec2{X: -1}},
	{Pos: mid, Thickness: vec.Vec2{X: -0.5, Y: -0.5}, Gap: vec.Vec2{X: -1, Y: -1}},
	{Pos: mid, Thickness: vec.Vec2{X: -1, Y: -0.5}, Gap: vec.Vec2{X: -1, Y: -1}},
	{Pos: vec.Vec2{X: -1, Y: -0.5}, Thickness: vec.Vec2{X: 1}, Gap: vec.Vec2{X: 1}},
}

// ShapeI is the upper vertical spoke, running from the middle of A1/A2
// down to the cell centre.
var ShapeI = [4]SegmentPoint{
	{Pos: top, Thickness: vec.Vec2{X: -0.5, Y: 1}, Gap: vec.Vec2{Y: 1}},
	{Pos: top, Thickness: vec.Vec2{X: 0.5, Y: 1}, Gap: vec.Vec2{Y: 1}},
	{Pos: mid, Thickness: vec.Vec2{X: 0.5, Y: -0.5}, Gap: vec.Vec2{Y: -1}},
	{Pos: mid, Thickness: vec.Vec2{X: -0.5, Y: -0.5}, Gap: vec.Vec2{Y: -1}},
}

// segmentInstruction pairs a base point list with the reflection that
// derives one concrete segment from it.
type segmentInstruction struct {
	points []SegmentPoint
	mirror matrix.Matrix
}

var (
	identity = matrix.Identity
	mirrorX  = matrix.Matrix{-1, 0, 0, 1, 0, 0}
	mirrorY  = matrix.Matrix{1, 0, 0, -1, 0, 0}
	mirrorXY = matrix.Matrix{-1, 0, 0, -1, 0, 0}
)

// segmentInstructions derives all seventeen segments from the four base
// shapes, indexed by segment ordinal. The DP entry has no points: the
// decimal point outline is not implemented yet and renders as nothing.
var segmentInstructions = [SegmentCount]segmentInstruction{
	SegA1: {points: ShapeA1[:], mirror: identity},
	SegA2: {points: ShapeA1[:], mirror: mirrorX},
	SegB:  {points: ShapeF[:], mirror: mirrorX},
	SegC:  {points: ShapeF[:], mirror: mirrorXY},
	SegD1: {points: ShapeA1[:], mirror: mirrorY},
	SegD2: {points: ShapeA1[:], mirror: mirrorXY},
	SegE:  {points: ShapeF[:], mirror: mirrorY},
	SegF:  {points: ShapeF[:], mirror: identity},
	SegG1: {points: ShapeG1[:], mirror: identity},
	SegG2: {points: ShapeG1[:], mirror: mirrorX},
	SegH:  {points: ShapeH[:], mirror: identity},
	SegI:  {points: ShapeI[:], mirror: identity},
	SegJ:  {points: ShapeH[:], mirror: mirrorX},
	SegK:  {points: ShapeH[:], mirror: mirrorY},
	SegL:  {points: ShapeI[:], mirror: mirrorY},
	SegM:  {points: ShapeH[:], mirror: mirrorXY},
	SegDP: {mirror: identity},
}
