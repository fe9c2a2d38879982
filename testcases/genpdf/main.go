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

// Command genpdf generates specimen sheets for the display test cases.
// It creates one PDF per case and optionally renders it to a PNG using
// Ghostscript, for visual comparison with the in-process raster backend.
package main

import (
	"flag"
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/segdisp"
	"seehuhn.de/go/segdisp/testcases"
)

const refDir = "testdata/specimen"

func main() {
	noPNG := flag.Bool("nopng", false, "skip the Ghostscript PNG conversion")
	flag.Parse()

	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(refDir, name+".pdf")
			pngPath := filepath.Join(refDir, name+".png")

			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if *noPNG {
				continue
			}
			if err := renderPNG(pdfPath, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	width, height := tc.ImageSize()

	// Page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{
		URx: float64(width),
		URy: float64(height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// Coverage semantics (0=unlit, 1=lit) need a black background.
	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, float64(width), float64(height))
	page.Fill()

	// PDF origin is bottom-left; the display assumes top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(height)})

	page.SetFillColor(color.DeviceGray(1))

	cell := segdisp.NewDigitDisplay(tc.Options)
	font := segdisp.Builtin()

	cw := tc.Options.Width
	ch := tc.Options.Height

	x := 0.0
	for _, c := range tc.Text {
		bits, _ := font.Lookup(c)
		polys := cell.Render(bits)
		for _, poly := range polys {
			page.MoveTo(x+cw/2+poly.Points[0].X, ch/2+poly.Points[0].Y)
			for _, pt := range poly.Points[1:] {
				page.LineTo(x+cw/2+pt.X, ch/2+pt.Y)
			}
			page.ClosePath()
		}
		if len(polys) > 0 {
			page.Fill()
		}
		x += cw + testcases.Spacing
	}

	return page.Close()
}

func renderPNG(pdfPath, pngPath string) error {
	// Render PDF to PNG using Ghostscript
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
