package testcases

var basicCases = []TestCase{
	{
		Name:   "isosceles_small",
		Path:   triangle(0, 0, 4, 0, 2, 4),
		Width:  8,
		Height: 8,
	},
	{
		Name:   "isosceles",
		Path:   triangle(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "right_angle",
		Path:   triangle(8, 8, 56, 8, 8, 56),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "other_left",
		Path:   triangle(40, 4, 4, 30, 50, 60),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "other_right",
		Path:   triangle(4, 4, 60, 30, 10, 60),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "flat_top",
		Path:   triangle(6, 58, 58, 58, 30, 6),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "flat_bottom",
		Path:   triangle(6, 6, 58, 6, 20, 58),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "clockwise",
		Path:   triangle(54, 50, 32, 10, 10, 50),
		Width:  64,
		Height: 64,
	},
}
