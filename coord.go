package easyscreen

// Two coordinate systems address the same cell grid:
//
//	(row, col) counts rows downward from the top-left corner
//	(x, y)     counts y upward from the bottom-left corner
//
// Columns and x are the same axis. Translation depends only on the
// current row count, which callers must query fresh: a resize between
// translation and use invalidates the result.

// rcToXY converts a top-left (row, col) position to bottom-left (x, y)
func rcToXY(row, col, rows int) (x, y int) {
	return col, rows - (row + 1)
}

// xyToRC converts a bottom-left (x, y) position to top-left (row, col)
func xyToRC(x, y, rows int) (row, col int) {
	return rows - (y + 1), x
}
