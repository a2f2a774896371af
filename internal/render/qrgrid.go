package render

// QRSize is the side of the decorative payment grid.
const QRSize = 21

const finderSize = 7

// QRGrid draws a QRSize x QRSize pattern with three finder squares and random
// fill elsewhere. A cell outside the finders is dark when rnd() > 0.55.
//
// Finder borders are the rows 0 and 6, the columns 0 and 6, and the last row
// and column of the grid. Only the top-left finder gets a solid center.
func QRGrid(rnd func() float64) [][]bool {
	grid := make([][]bool, QRSize)
	for row := range grid {
		grid[row] = make([]bool, QRSize)
		for col := range grid[row] {
			finder := isFinder(row, col)
			border := finder && (row == 0 || row == finderSize-1 ||
				col == 0 || col == finderSize-1 ||
				row == QRSize-1 || col == QRSize-1)
			center := finder && row > 1 && row < 5 && col > 1 && col < 5
			grid[row][col] = border || center || (!finder && rnd() > 0.55)
		}
	}
	return grid
}

func isFinder(row, col int) bool {
	top := row < finderSize
	left := col < finderSize
	right := col >= QRSize-finderSize
	bottom := row >= QRSize-finderSize
	return (top && left) || (top && right) || (bottom && left)
}
