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
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

const renderEps = 1e-5

func litMask(t *testing.T, r rune) SegmentBits {
	t.Helper()
	bits, ok := Builtin().Lookup(r)
	if !ok {
		t.Fatalf("no glyph for %q", r)
	}
	return bits
}

func TestRenderCounts(t *testing.T) {
	d := NewDigitDisplay(DefaultDigitOptions())

	cases := []struct {
		r    rune
		want int
	}{
		{'H', 6},
		{'i', 3},
		{'8', 10},
		{'-', 2},
		{' ', 0},
	}
	for _, tc := range cases {
		polys := d.Render(litMask(t, tc.r))
		if len(polys) != tc.want {
			t.Errorf("%q: %d polygons, want %d", tc.r, len(polys), tc.want)
		}
	}
}

func TestRenderEmptyShortCircuits(t *testing.T) {
	d := NewDigitDisplay(DefaultDigitOptions())
	if got := d.Render(Bits()); got != nil {
		t.Errorf("empty mask: got %d polygons, want none", len(got))
	}
	for i, ok := range d.cached {
		if ok {
			t.Errorf("segment %d cached after empty render", i)
		}
	}
}

func TestRenderDecimalPoint(t *testing.T) {
	// The decimal point has no outline yet; a lit DP emits nothing.
	d := NewDigitDisplay(DefaultDigitOptions())
	if polys := d.Render(Bits(SegDP)); len(polys) != 0 {
		t.Errorf("DP: got %d polygons, want 0", len(polys))
	}
}

func TestRenderIdempotent(t *testing.T) {
	d := NewDigitDisplay(DefaultDigitOptions())
	mask := litMask(t, '8')

	first := d.Render(mask)
	second := d.Render(mask) // cache hit

	if len(first) != len(second) {
		t.Fatalf("polygon count changed: %d then %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Segment != second[i].Segment {
			t.Errorf("polygon %d: segment %v then %v", i, first[i].Segment, second[i].Segment)
		}
		if !equalPoints(first[i].Points, second[i].Points, renderEps) {
			t.Errorf("polygon %d (%v): cached points differ from fresh points",
				i, first[i].Segment)
		}
	}
}

func TestModifyInvalidatesCache(t *testing.T) {
	d := NewDigitDisplay(DefaultDigitOptions())
	mask := litMask(t, 'H')

	before := d.Render(mask)

	d.ModifyOptions(func(opt *DigitOptions) {
		opt.Thickness += 3
	})

	after := d.Render(mask)
	fresh := Outline(after[0].Segment, d.Options().drawing())

	if equalPoints(before[0].Points, after[0].Points, renderEps) {
		t.Error("outline unchanged after thickness change; stale cache?")
	}
	if !equalPoints(after[0].Points, fresh, renderEps) {
		t.Error("post-modify outline does not match freshly computed geometry")
	}
}

func TestSetOptionsInvalidatesCache(t *testing.T) {
	d := NewDigitDisplay(DefaultDigitOptions())
	mask := litMask(t, '0')
	before := d.Render(mask)

	opt := d.Options()
	opt.Gap = 4
	d.SetOptions(opt)

	after := d.Render(mask)
	if equalPoints(before[0].Points, after[0].Points, renderEps) {
		t.Error("outline unchanged after gap change; stale cache?")
	}
}

func TestRenderFillStyle(t *testing.T) {
	opt := DefaultDigitOptions()
	opt.Fill = color.RGBA{G: 200, A: 255}
	d := NewDigitDisplay(opt)

	for _, poly := range d.Render(litMask(t, '1')) {
		if poly.Fill != opt.Fill {
			t.Errorf("%v: fill %v, want %v", poly.Segment, poly.Fill, opt.Fill)
		}
	}
}

func TestPathStructure(t *testing.T) {
	d := NewDigitDisplay(DefaultDigitOptions())
	p := d.Path(litMask(t, 'H'))

	var moves, closes int
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			moves++
			if len(pts) != 1 {
				t.Errorf("MoveTo with %d points", len(pts))
			}
		case path.CmdClose:
			closes++
			if len(pts) != 0 {
				t.Errorf("Close with %d points", len(pts))
			}
		case path.CmdLineTo:
			if len(pts) != 1 {
				t.Errorf("LineTo with %d points", len(pts))
			}
		default:
			t.Errorf("unexpected path command %v", cmd)
		}
	}
	if moves != 6 || closes != 6 {
		t.Errorf("got %d subpaths with %d closes, want 6 and 6", moves, closes)
	}
}

func TestRenderPointsDetached(t *testing.T) {
	d := NewDigitDisplay(DefaultDigitOptions())
	mask := litMask(t, 'H')

	polys := d.Render(mask)
	for i := range polys[0].Points {
		polys[0].Points[i] = vec.Vec2{X: -1e6, Y: -1e6}
	}

	again := d.Render(mask)
	fresh := Outline(again[0].Segment, d.Options().drawing())
	if !equalPoints(again[0].Points, fresh, renderEps) {
		t.Error("mutating returned points changed cached geometry")
	}
}

// TestEncodeRenderScenario walks the full pipeline for the text "Hi":
// per-cell masks from the font, polygon counts from the renderer.
func TestEncodeRenderScenario(t *testing.T) {
	font := Builtin()
	d := NewDigitDisplay(DefaultDigitOptions())

	text := "Hi"
	wantCounts := []int{6, 3}

	for i, r := range text {
		bits, ok := font.Lookup(r)
		if !ok {
			t.Fatalf("no glyph for %q", r)
		}
		if want := litMask(t, r); bits != want {
			t.Errorf("cell %d: mask %017b, want %017b", i, bits, want)
		}
		if got := len(d.Render(bits)); got != wantCounts[i] {
			t.Errorf("cell %d: %d polygons, want %d", i, got, wantCounts[i])
		}
	}
}

// BenchmarkRender measures steady-state rendering with a warm cache.
func BenchmarkRender(b *testing.B) {
	d := NewDigitDisplay(DefaultDigitOptions())
	mask, _ := Builtin().Lookup('8')

	b.ReportAllocs()
	for b.Loop() {
		d.Render(mask)
	}
}
