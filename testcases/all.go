package testcases

// All contains all test cases, grouped by category.
// The category name is used as a prefix in specimen filenames.
var All = map[string][]TestCase{
	"glyphs": glyphCases,
	"params": paramCases,
}
