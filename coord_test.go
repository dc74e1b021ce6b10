package easyscreen

import "testing"

func TestCoordinateTranslation(t *testing.T) {
	rows := 24

	cases := []struct {
		row, col int
		x, y     int
	}{
		{0, 0, 0, 23},   // top-left
		{23, 0, 0, 0},   // bottom-left
		{0, 79, 79, 23}, // top-right
		{23, 79, 79, 0}, // bottom-right
		{11, 40, 40, 12},
	}

	for _, c := range cases {
		x, y := rcToXY(c.row, c.col, rows)
		if x != c.x || y != c.y {
			t.Errorf("Expected (%d, %d) for rc(%d, %d), got (%d, %d)", c.x, c.y, c.row, c.col, x, y)
		}

		row, col := xyToRC(c.x, c.y, rows)
		if row != c.row || col != c.col {
			t.Errorf("Expected (%d, %d) for xy(%d, %d), got (%d, %d)", c.row, c.col, c.x, c.y, row, col)
		}
	}
}

func TestCoordinateRoundTrip(t *testing.T) {
	// Translation round-trips at any fixed row count
	for _, rows := range []int{1, 8, 24, 50} {
		for row := 0; row < rows; row++ {
			for col := 0; col < 5; col++ {
				x, y := rcToXY(row, col, rows)
				backRow, backCol := xyToRC(x, y, rows)
				if backRow != row || backCol != col {
					t.Errorf("Expected round trip of (%d, %d) at %d rows, got (%d, %d)",
						row, col, rows, backRow, backCol)
				}
			}
		}
	}
}

func TestCoordinateColumnAxis(t *testing.T) {
	// Columns and x are the same axis regardless of row count
	for _, rows := range []int{5, 24} {
		x, _ := rcToXY(2, 17, rows)
		if x != 17 {
			t.Errorf("Expected x 17 at %d rows, got %d", rows, x)
		}
		_, col := xyToRC(17, 2, rows)
		if col != 17 {
			t.Errorf("Expected col 17 at %d rows, got %d", rows, col)
		}
	}
}
