package testcases

import "seehuhn.de/go/segdisp"

var glyphCases = []TestCase{
	{
		Name:    "digits",
		Text:    "0123456789",
		Options: segdisp.DefaultDigitOptions(),
	},
	{
		Name:    "upper_a_m",
		Text:    "ABCDEFGHIJKLM",
		Options: segdisp.DefaultDigitOptions(),
	},
	{
		Name:    "upper_n_z",
		Text:    "NOPQRSTUVWXYZ",
		Options: segdisp.DefaultDigitOptions(),
	},
	{
		Name:    "lower_a_m",
		Text:    "abcdefghijklm",
		Options: segdisp.DefaultDigitOptions(),
	},
	{
		Name:    "lower_n_z",
		Text:    "nopqrstuvwxyz",
		Options: segdisp.DefaultDigitOptions(),
	},
	{
		Name:    "punctuation",
		Text:    `!"#$%&'()*+,-./:;<=>?@`,
		Options: segdisp.DefaultDigitOptions(),
	},
	{
		Name:    "greeting",
		Text:    "HELLO World 42",
		Options: segdisp.DefaultDigitOptions(),
	},
}

var paramCases = []TestCase{
	{
		Name:    "thin",
		Text:    "8888",
		Options: withStroke(segdisp.DefaultDigitOptions(), 2, 1),
	},
	{
		Name:    "thick",
		Text:    "8888",
		Options: withStroke(segdisp.DefaultDigitOptions(), 12, 1.3),
	},
	{
		Name:    "wide_gap",
		Text:    "8888",
		Options: withStroke(segdisp.DefaultDigitOptions(), 5.7, 6),
	},
	{
		Name:    "no_gap",
		Text:    "8888",
		Options: withStroke(segdisp.DefaultDigitOptions(), 5.7, 0),
	},
	{
		Name:    "large_cell",
		Text:    "0*X",
		Options: withSize(segdisp.DefaultDigitOptions(), 100, 200),
	},
}

func withStroke(opt segdisp.DigitOptions, thickness, gap float64) segdisp.DigitOptions {
	opt.Thickness = thickness
	opt.Gap = gap
	return opt
}

func withSize(opt segdisp.DigitOptions, width, height float64) segdisp.DigitOptions {
	opt.Width = width
	opt.Height = height
	return opt
}
