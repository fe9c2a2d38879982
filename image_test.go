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
	"bytes"
	"image"
	"testing"
)

func cellImage(d *DigitDisplay) *image.RGBA {
	opt := d.Options()
	return image.NewRGBA(image.Rect(0, 0, int(opt.Width), int(opt.Height)))
}

func TestDrawCell(t *testing.T) {
	d := NewDigitDisplay(DefaultDigitOptions())
	r := NewRenderer()

	dst := cellImage(d)
	r.DrawCell(dst, dst.Bounds(), d, litMask(t, 'H'))

	if !hasInk(dst) {
		t.Error("drawing 'H' produced a blank image")
	}
}

func TestDrawCellBlank(t *testing.T) {
	d := NewDigitDisplay(DefaultDigitOptions())
	r := NewRenderer()

	dst := cellImage(d)
	r.DrawCell(dst, dst.Bounds(), d, Bits())

	if hasInk(dst) {
		t.Error("empty mask produced visible pixels")
	}
}

// TestDrawCellSizeMismatch checks the defensive skip: a draw target whose
// size does not match the cell options renders nothing rather than
// stretched geometry.
func TestDrawCellSizeMismatch(t *testing.T) {
	d := NewDigitDisplay(DefaultDigitOptions())
	r := NewRenderer()

	dst := image.NewRGBA(image.Rect(0, 0, 100, 100))
	r.DrawCell(dst, dst.Bounds(), d, litMask(t, '8'))

	if hasInk(dst) {
		t.Error("mismatched target size should draw nothing")
	}
}

// TestDrawCellCacheConsistent renders the same mask with a warm and a
// cold cell; the pixel output must be identical.
func TestDrawCellCacheConsistent(t *testing.T) {
	mask := litMask(t, '8')
	r := NewRenderer()

	warm := NewDigitDisplay(DefaultDigitOptions())
	warm.Render(mask) // populate the cache
	warmImg := cellImage(warm)
	r.DrawCell(warmImg, warmImg.Bounds(), warm, mask)

	cold := NewDigitDisplay(DefaultDigitOptions())
	coldImg := cellImage(cold)
	r.DrawCell(coldImg, coldImg.Bounds(), cold, mask)

	if !bytes.Equal(warmImg.Pix, coldImg.Pix) {
		t.Error("cached render differs from fresh render")
	}
}

func TestDrawString(t *testing.T) {
	d := NewDigitDisplay(DefaultDigitOptions())
	r := NewRenderer()
	font := Builtin()

	opt := d.Options()
	w, h := int(opt.Width), int(opt.Height)
	full := image.NewRGBA(image.Rect(0, 0, 2*w+r.Spacing, h))
	r.DrawString(full, image.Point{}, d, font, "Hi")

	// Cell 0 of the string must match a standalone 'H' cell.
	single := cellImage(d)
	r.DrawCell(single, single.Bounds(), d, litMask(t, 'H'))

	for y := range h {
		for x := range w {
			if full.RGBAAt(x, y) != single.RGBAAt(x, y) {
				t.Fatalf("pixel (%d,%d) differs between string and single cell", x, y)
			}
		}
	}

	// The spacing column between cells stays blank.
	for y := range h {
		if full.RGBAAt(w+r.Spacing/2, y).A != 0 {
			t.Fatalf("ink in the inter-cell gap at y=%d", y)
		}
	}
}

// TestDrawStringUnmappedRune checks the caller-side fallback: characters
// without a glyph come out as blank cells.
func TestDrawStringUnmappedRune(t *testing.T) {
	d := NewDigitDisplay(DefaultDigitOptions())
	r := NewRenderer()

	opt := d.Options()
	dst := image.NewRGBA(image.Rect(0, 0, int(opt.Width), int(opt.Height)))
	r.DrawString(dst, image.Point{}, d, Builtin(), "é")

	if hasInk(dst) {
		t.Error("unmapped rune should render as a blank cell")
	}
}

func hasInk(img *image.RGBA) bool {
	for _, p := range img.Pix {
		if p != 0 {
			return true
		}
	}
	return false
}
