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

// Package segdisp renders text as a simulated seventeen-segment display
// (the classic sixteen-segment alphanumeric display plus a decimal point),
// in the style of vintage LED and VFD character displays.
//
// The package has two public entry points: [Font.Lookup] maps a character
// to the set of lit segments, and [DigitDisplay.Render] turns a set of lit
// segments into filled polygon outlines under the current cell geometry.
// Everything else is plumbing around these two operations.
package segdisp

import "strconv"

// Segment identifies one independently-lit stroke of a display cell.
//
// The ordinal values are fixed: they are the bit positions used by
// [SegmentBits], and fonts store masks as raw integers, so the numbering
// must never change. Segment names follow the standard sixteen-segment
// diagram: A1/A2 are the top corner strokes, B/C the right side, D1/D2 the
// bottom corners, E/F the left side, G1/G2 the horizontal centre bars,
// H through M the diagonal and vertical centre spokes, and DP the decimal
// point.
type Segment int

const (
	SegA1 Segment = iota
	SegA2
	SegB
	SegC
	SegD1
	SegD2
	SegE
	SegF
	SegG1
	SegG2
	SegH
	SegI
	SegJ
	SegK
	SegL
	SegM
	SegDP
)

// SegmentCount is the number of segments in a display cell.
const SegmentCount = 17

var segmentNames = [SegmentCount]string{
	"A1", "A2", "B", "C", "D1", "D2", "E", "F",
	"G1", "G2", "H", "I", "J", "K", "L", "M", "DP",
}

// String returns the canonical segment name, or "Segment(n)" for values
// outside the valid range.
func (s Segment) String() string {
	if s < 0 || s >= SegmentCount {
		return "Segment(" + strconv.Itoa(int(s)) + ")"
	}
	return segmentNames[s]
}

// SegmentFromIndex converts an integer index to a Segment.
// The second return value is false if the index is outside [0, SegmentCount).
func SegmentFromIndex(i int) (Segment, bool) {
	if i < 0 || i >= SegmentCount {
		return 0, false
	}
	return Segment(i), true
}

// Bit returns the single-segment mask for s.
func (s Segment) Bit() SegmentBits {
	return 1 << s
}

// SegmentBits is a set of lit segments, one bit per segment ordinal.
// The zero value is the blank cell. Bits at positions SegmentCount and
// above are never set by any constructor in this package.
type SegmentBits uint32

// segmentMask has the low SegmentCount bits set.
const segmentMask SegmentBits = 1<<SegmentCount - 1

// Bits returns the mask with all the given segments lit.
func Bits(segs ...Segment) SegmentBits {
	var b SegmentBits
	for _, s := range segs {
		b |= s.Bit()
	}
	return b
}

// SegmentBitsFromUint32 converts a raw integer to a segment mask.
// Bits outside the valid segment range are discarded.
func SegmentBitsFromUint32(v uint32) SegmentBits {
	return SegmentBits(v) & segmentMask
}

// Uint32 returns the raw integer representation of the mask.
func (b SegmentBits) Uint32() uint32 {
	return uint32(b)
}

// IsEmpty reports whether no segment is lit.
func (b SegmentBits) IsEmpty() bool {
	return b == 0
}

// Union returns the mask of segments lit in b or in o.
func (b SegmentBits) Union(o SegmentBits) SegmentBits {
	return b | o
}

// Intersect returns the mask of segments lit in both b and o.
func (b SegmentBits) Intersect(o SegmentBits) SegmentBits {
	return b & o
}

// With returns b with segment s lit.
func (b SegmentBits) With(s Segment) SegmentBits {
	return b | s.Bit()
}

// Contains reports whether segment s is lit in b.
func (b SegmentBits) Contains(s Segment) bool {
	return b&s.Bit() != 0
}
