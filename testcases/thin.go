package testcases

var thinCases = []TestCase{
	{
		Name:   "sliver_no_pixels",
		Path:   triangle(0, 0, 1, 3, 1, 2),
		Width:  4,
		Height: 4,
	},
	{
		Name:   "long_shallow",
		Path:   triangle(2, 2, 60, 5, 3, 4),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "long_steep",
		Path:   triangle(30, 2, 33, 61, 31, 3),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "unit_right",
		Path:   triangle(0, 0, 1, 0, 0, 1),
		Width:  2,
		Height: 2,
	},
}
