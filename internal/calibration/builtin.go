package calibration

import "stripscan/pkg/colorutil"

func pt(value float64, r, g, b uint8) Point {
	return Point{Value: value, Color: colorutil.RGB{R: r, G: g, B: b}}
}

// Default returns the built-in calibration table for the 16-pad consumer
// water test strip. Ramps run from highest concentration to lowest,
// matching the printed reference chart.
func Default() Table {
	return Table{Analytes: []Analyte{
		{Name: "Total Alkalinity", Points: []Point{
			pt(240, 40, 79, 58), pt(180, 55, 91, 56), pt(120, 91, 116, 61),
			pt(80, 117, 123, 63), pt(40, 127, 127, 69), pt(0, 175, 151, 71),
		}},
		{Name: "PH", Points: []Point{
			pt(8.4, 223, 53, 35), pt(7.8, 224, 71, 33), pt(7.6, 219, 94, 46),
			pt(7.2, 209, 110, 44), pt(6.8, 191, 122, 57), pt(6.2, 169, 130, 65),
		}},
		{Name: "Hardness", Points: []Point{
			pt(425, 110, 58, 87), pt(250, 92, 62, 93), pt(100, 72, 72, 108),
			pt(50, 63, 79, 121), pt(25, 52, 76, 111), pt(0, 30, 67, 100),
		}},
		{Name: "Hydrogen Sulfide", Points: []Point{
			pt(10, 116, 57, 34), pt(5, 167, 104, 69), pt(3, 171, 118, 79),
			pt(2, 216, 176, 116), pt(1, 223, 198, 144), pt(0.5, 195, 198, 181),
			pt(0, 180, 180, 180),
		}},
		{Name: "Iron", Points: []Point{
			pt(5.0, 236, 71, 35), pt(3.0, 231, 95, 37), pt(1.0, 224, 120, 73),
			pt(0.5, 215, 145, 117), pt(0.3, 193, 159, 155), pt(0.0, 180, 180, 180),
		}},
		{Name: "Copper", Points: []Point{
			pt(5, 212, 111, 119), pt(2, 233, 128, 115), pt(1, 226, 140, 106),
			pt(0.5, 215, 147, 110), pt(0.2, 197, 163, 128), pt(0, 177, 175, 143),
		}},
		{Name: "Lead", Points: []Point{
			pt(50, 190, 67, 54), pt(30, 203, 80, 60), pt(15, 209, 104, 74),
			pt(5, 190, 115, 78), pt(0, 173, 142, 80),
		}},
		{Name: "Manganese", Points: []Point{
			pt(5.0, 143, 49, 76), pt(2.0, 163, 61, 81), pt(1.0, 179, 73, 75),
			pt(0.5, 205, 81, 71), pt(0.1, 210, 99, 75), pt(0.05, 192, 130, 99),
			pt(0.0, 175, 167, 95),
		}},
		{Name: "Total Chlorine", Points: []Point{
			pt(20, 66, 128, 120), pt(10, 92, 149, 133), pt(5, 132, 167, 126),
			pt(3, 150, 174, 125), pt(1, 165, 183, 133), pt(0.5, 186, 200, 165),
			pt(0, 163, 179, 158),
		}},
		{Name: "Free Chlorine", Points: []Point{
			pt(20, 74, 128, 130), pt(10, 72, 146, 147), pt(5, 114, 164, 158),
			pt(3, 128, 169, 163), pt(1, 147, 179, 179), pt(0.5, 159, 191, 197),
			pt(0, 180, 180, 180),
		}},
		{Name: "Nitrate", Points: []Point{
			pt(500, 221, 65, 90), pt(250, 233, 90, 108), pt(100, 240, 123, 127),
			pt(50, 232, 138, 139), pt(25, 215, 165, 166), pt(10, 206, 211, 219),
			pt(0, 180, 180, 180),
		}},
		{Name: "Nitrite", Points: []Point{
			pt(80, 209, 44, 77), pt(40, 233, 75, 105), pt(20, 237, 98, 113),
			pt(10, 231, 121, 129), pt(5, 215, 146, 157), pt(1, 204, 193, 199),
			pt(0, 180, 180, 180),
		}},
		{Name: "Sulfate", Points: []Point{
			pt(1600, 120, 147, 157), pt(1200, 138, 150, 152), pt(800, 133, 125, 137),
			pt(400, 128, 123, 150), pt(200, 128, 117, 158), pt(0, 103, 88, 137),
		}},
		{Name: "Zinc", Points: []Point{
			pt(100, 82, 101, 141), pt(50, 103, 92, 127), pt(30, 139, 89, 114),
			pt(10, 139, 82, 109), pt(5, 150, 82, 98), pt(0, 134, 73, 96),
		}},
		{Name: "Sodium Chloride", Points: []Point{
			pt(2000, 248, 216, 141), pt(1000, 251, 206, 139), pt(500, 200, 119, 92),
			pt(250, 160, 78, 77), pt(100, 145, 69, 73), pt(0, 114, 63, 62),
		}},
		{Name: "Fluoride", Points: []Point{
			pt(100, 246, 154, 41), pt(50, 253, 143, 48), pt(25, 240, 113, 54),
			pt(10, 220, 93, 59), pt(4, 190, 59, 65), pt(0, 135, 53, 65),
		}},
	}}
}
