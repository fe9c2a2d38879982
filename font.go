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
	"maps"
	"sync"
)

// Font maps characters to segment masks. A Font is immutable after
// construction and safe for concurrent use; extending the character set
// means building a new Font.
type Font struct {
	glyphs map[rune]SegmentBits
}

// NewFont builds a font from the given glyph table. The map is copied,
// so later changes by the caller do not affect the font.
func NewFont(glyphs map[rune]SegmentBits) *Font {
	return &Font{glyphs: maps.Clone(glyphs)}
}

// Lookup returns the segment mask for r. The second return value is false
// if the font defines no glyph for r; no substitution happens here, the
// caller decides what an unmapped character looks like (typically a blank
// cell).
func (f *Font) Lookup(r rune) (SegmentBits, bool) {
	b, ok := f.glyphs[r]
	return b, ok
}

// Len returns the number of characters the font defines.
func (f *Font) Len() int {
	return len(f.glyphs)
}

// Builtin returns the built-in character set: space, common ASCII
// punctuation, digits, upper and lower case letters. The table is built
// once on first use and shared.
//
// The lowercase forms are stylized, rendered smaller or stacked by
// reusing segments asymmetrically; they are hand-tuned, not derived from
// the uppercase shapes. Segment choices follow
// https://github.com/CatoLynx/Cheetah_Firmware/blob/main/components/driver_display_char_16seg_led_spi/char_16seg_font.h
func Builtin() *Font {
	return builtinFont()
}

var builtinFont = sync.OnceValue(func() *Font {
	return &Font{glyphs: map[rune]SegmentBits{
		' ':  0,
		'!':  Bits(SegA1, SegA2, SegH, SegI, SegJ, SegD1, SegD2),
		'"':  Bits(SegF, SegB),
		'#':  Bits(SegI, SegL, SegB, SegC, SegG1, SegG2, SegD1, SegD2),
		'$':  Bits(SegA1, SegA2, SegF, SegG1, SegG2, SegC, SegD1, SegD2, SegI, SegL),
		'%':  Bits(SegA1, SegJ, SegK, SegD2),
		'&':  Bits(SegA1, SegF, SegI, SegG1, SegG2, SegE, SegM, SegD1, SegD2),
		'\'': Bits(SegI),
		'(':  Bits(SegA1, SegF, SegE, SegD1),
		')':  Bits(SegA2, SegB, SegC, SegD2),
		'*':  Bits(SegG1, SegG2, SegH, SegI, SegJ, SegK, SegL, SegM),
		'+':  Bits(SegI, SegL, SegG1, SegG2),
		',':  Bits(SegK),
		'-':  Bits(SegG1, SegG2),
		'.':  Bits(SegDP),
		'/':  Bits(SegJ, SegK),

		'0': Bits(SegA1, SegA2, SegB, SegC, SegD1, SegD2, SegE, SegF, SegJ, SegK),
		'1': Bits(SegJ, SegB, SegC),
		'2': Bits(SegA1, SegA2, SegB, SegG1, SegG2, SegE, SegD1, SegD2),
		'3': Bits(SegA1, SegA2, SegB, SegG1, SegG2, SegC, SegD1, SegD2),
		'4': Bits(SegF, SegB, SegG1, SegG2, SegC),
		'5': Bits(SegA1, SegA2, SegF, SegG1, SegG2, SegC, SegD1, SegD2),
		'6': Bits(SegA1, SegA2, SegF, SegG1, SegG2, SegE, SegC, SegD1, SegD2),
		'7': Bits(SegA1, SegA2, SegB, SegC),
		'8': Bits(SegA1, SegA2, SegB, SegC, SegD1, SegD2, SegE, SegF, SegG1, SegG2),
		'9': Bits(SegA1, SegA2, SegB, SegC, SegD1, SegD2, SegF, SegG1, SegG2),

		':': Bits(SegG1, SegD1),
		';': Bits(SegA1, SegK),
		'<': Bits(SegJ, SegM),
		'=': Bits(SegG1, SegG2, SegD1, SegD2),
		'>': Bits(SegH, SegK),
		'?': Bits(SegA1, SegA2, SegB, SegG2, SegL),
		'@': Bits(SegA1, SegA2, SegB, SegC, SegD2, SegE, SegF, SegG2, SegL),

		'A': Bits(SegA1, SegA2, SegB, SegC, SegE, SegF, SegG1, SegG2),
		'B': Bits(SegA1, SegA2, SegB, SegC, SegD1, SegD2, SegG2, SegI, SegL),
		'C': Bits(SegA1, SegA2, SegD1, SegD2, SegE, SegF),
		'D': Bits(SegA1, SegA2, SegB, SegC, SegD1, SegD2, SegI, SegL),
		'E': Bits(SegA1, SegA2, SegD1, SegD2, SegE, SegF, SegG1),
		'F': Bits(SegA1, SegA2, SegE, SegF, SegG1),
		'G': Bits(SegA1, SegA2, SegC, SegD1, SegD2, SegE, SegF, SegG2),
		'H': Bits(SegB, SegC, SegE, SegF, SegG1, SegG2),
		'I': Bits(SegA1, SegA2, SegD1, SegD2, SegI, SegL),
		'J': Bits(SegB, SegC, SegD1, SegD2),
		'K': Bits(SegE, SegF, SegG1, SegJ, SegM),
		'L': Bits(SegD1, SegD2, SegE, SegF),
		'M': Bits(SegB, SegC, SegE, SegF, SegH, SegJ),
		'N': Bits(SegB, SegC, SegE, SegF, SegH, SegM),
		'O': Bits(SegA1, SegA2, SegB, SegC, SegD1, SegD2, SegE, SegF),
		'P': Bits(SegA1, SegA2, SegB, SegE, SegF, SegG1, SegG2),
		'Q': Bits(SegA1, SegA2, SegB, SegC, SegD1, SegD2, SegE, SegF, SegM),
		'R': Bits(SegA1, SegA2, SegB, SegE, SegF, SegG1, SegG2, SegM),
		'S': Bits(SegA1, SegA2, SegC, SegD1, SegD2, SegF, SegG1, SegG2),
		'T': Bits(SegA1, SegA2, SegI, SegL),
		'U': Bits(SegB, SegC, SegD1, SegD2, SegE, SegF),
		'V': Bits(SegE, SegF, SegJ, SegK),
		'W': Bits(SegB, SegC, SegE, SegF, SegK, SegM),
		'X': Bits(SegH, SegJ, SegK, SegM),
		'Y': Bits(SegH, SegJ, SegL),
		'Z': Bits(SegA1, SegA2, SegD1, SegD2, SegJ, SegK),

		'a': Bits(SegG1, SegE, SegL, SegD1, SegD2),
		'b': Bits(SegE, SegF, SegG1, SegG2, SegD1, SegD2, SegC),
		'c': Bits(SegG1, SegG2, SegE, SegD1, SegD2),
		'd': Bits(SegB, SegC, SegD1, SegD2, SegE, SegG1, SegG2),
		'e': Bits(SegA1, SegA2, SegB, SegD1, SegD2, SegE, SegF, SegG1, SegG2),
		'f': Bits(SegA2, SegI, SegL, SegG1, SegG2),
		'g': Bits(SegA1, SegI, SegL, SegD1, SegF, SegG1),
		'h': Bits(SegE, SegF, SegG1, SegG2, SegC),
		'i': Bits(SegA1, SegA2, SegL),
		'j': Bits(SegA1, SegA2, SegL, SegD1),
		'k': Bits(SegE, SegF, SegG1, SegJ, SegM),
		'l': Bits(SegE, SegF),
		'm': Bits(SegG1, SegG2, SegE, SegL, SegC),
		'n': Bits(SegG1, SegG2, SegE, SegC),
		'o': Bits(SegG1, SegG2, SegE, SegC, SegD1, SegD2),
		'p': Bits(SegA1, SegI, SegG1, SegE, SegF),
		'q': Bits(SegA2, SegB, SegC, SegI, SegG2),
		'r': Bits(SegG1, SegE),
		's': Bits(SegG2, SegM, SegD2),
		't': Bits(SegE, SegF, SegG1, SegD1),
		'u': Bits(SegE, SegD1, SegD2, SegC),
		'v': Bits(SegE, SegK),
		'w': Bits(SegE, SegK, SegM, SegC),
		'x': Bits(SegH, SegJ, SegK, SegM),
		'y': Bits(SegH, SegJ, SegL, SegD1),
		'z': Bits(SegG1, SegK, SegD1),
	}}
})
