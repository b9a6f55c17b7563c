package testcases

// degenerateCases all have zero area and must not produce any pixels.
var degenerateCases = []TestCase{
	{
		Name:   "two_coincident",
		Path:   triangle(0, 0, 0, 0, 5, 5),
		Width:  8,
		Height: 8,
	},
	{
		Name:   "all_coincident",
		Path:   triangle(3, 3, 3, 3, 3, 3),
		Width:  8,
		Height: 8,
	},
	{
		Name:   "collinear_diagonal",
		Path:   triangle(2, 2, 30, 30, 60, 60),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "collinear_horizontal",
		Path:   triangle(50, 20, 4, 20, 30, 20),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "collinear_vertical",
		Path:   triangle(20, 4, 20, 60, 20, 33),
		Width:  64,
		Height: 64,
	},
}
