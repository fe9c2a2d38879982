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
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// Renderer fills display cells into images, using golang.org/x/image/vector
// for anti-aliased polygon rasterization. Create one instance and reuse it;
// the underlying rasterizer buffers are recycled between cells.
//
// A Renderer is not safe for concurrent use.
type Renderer struct {
	// Spacing is the horizontal distance between adjacent cells drawn by
	// [Renderer.DrawString], in pixels.
	Spacing int

	ras *vector.Rasterizer
	src *image.Uniform
}

// NewRenderer returns a Renderer with the default cell spacing.
func NewRenderer() *Renderer {
	return &Renderer{
		Spacing: 8,
		ras:     &vector.Rasterizer{},
		src:     &image.Uniform{},
	}
}

// DrawCell draws one display cell with the given lit segments into the
// bounds rectangle of dst.
//
// If the rectangle's size does not match the cell's configured size the
// call draws nothing: a mismatch means a resize has not yet propagated to
// the cell options, and rendering would stretch or crop the geometry.
// Nothing is drawn for an empty mask either.
func (r *Renderer) DrawCell(dst draw.Image, bounds image.Rectangle, d *DigitDisplay, bits SegmentBits) {
	opt := d.Options()
	w := int(math.Round(opt.Width))
	h := int(math.Round(opt.Height))
	if bounds.Dx() != w || bounds.Dy() != h {
		return
	}

	polys := d.Render(bits)
	if len(polys) == 0 {
		return
	}

	// Outlines are centred on the cell; shift to top-left origin.
	cx := float32(opt.Width / 2)
	cy := float32(opt.Height / 2)

	r.ras.Reset(w, h)
	for _, poly := range polys {
		r.ras.MoveTo(cx+float32(poly.Points[0].X), cy+float32(poly.Points[0].Y))
		for _, pt := range poly.Points[1:] {
			r.ras.LineTo(cx+float32(pt.X), cy+float32(pt.Y))
		}
		r.ras.ClosePath()
	}

	fill := opt.Fill
	if fill == nil {
		fill = color.Opaque
	}
	r.src.C = fill
	r.ras.Draw(dst, bounds, r.src, image.Point{})
}

// DrawString draws s as a single row of cells, the first cell's top-left
// corner at origin. Each rune is encoded through f; runes without a glyph
// render as blank cells. Layout beyond a single left-to-right row is the
// host's business.
func (r *Renderer) DrawString(dst draw.Image, origin image.Point, d *DigitDisplay, f *Font, s string) {
	opt := d.Options()
	w := int(math.Round(opt.Width))
	h := int(math.Round(opt.Height))

	x := origin.X
	for _, c := range s {
		bits, _ := f.Lookup(c)
		bounds := image.Rect(x, origin.Y, x+w, origin.Y+h)
		r.DrawCell(dst, bounds, d, bits)
		x += w + r.Spacing
	}
}
