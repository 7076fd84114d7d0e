package domain

// Cell is a (row, column) position on the board.
type Cell struct {
	Row    int
	Column int
}

// Line is a run of ToWin equal, non-empty cells.
type Line struct {
	Player PlayerID
	Cells  [ToWin]Cell
}

type direction struct {
	deltaRow, deltaCol int
}

// horizontal, vertical, and the two diagonals (rising to the right and
// rising to the left)
var directions = [...]direction{
	{0, 1},
	{1, 0},
	{-1, 1},
	{-1, -1},
}

// CheckWin reports whether any line of ToWin equal non-empty cells exists.
func CheckWin(board Board) bool {
	_, ok := FindLine(board)
	return ok
}

// FindLine scans every start cell in every direction and returns the
// first window of ToWin matching cells.
func FindLine(board Board) (Line, bool) {
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			player := board.At(row, col)
			if player == Empty {
				continue
			}
			for _, d := range directions {
				endRow := row + d.deltaRow*(ToWin-1)
				endCol := col + d.deltaCol*(ToWin-1)
				if !inBounds(endRow, endCol) {
					continue
				}
				if countInDirection(board, row, col, d, player) >= ToWin-1 {
					line := Line{Player: player}
					for i := 0; i < ToWin; i++ {
						line.Cells[i] = Cell{Row: row + d.deltaRow*i, Column: col + d.deltaCol*i}
					}
					return line, true
				}
			}
		}
	}
	return Line{}, false
}

// this counts the disks of player after (row, col) in direction d,
// stopping at the window size
func countInDirection(board Board, row, col int, d direction, player PlayerID) int {
	count := 0
	r, c := row+d.deltaRow, col+d.deltaCol
	for count < ToWin-1 && inBounds(r, c) && board.At(r, c) == player {
		count++
		r += d.deltaRow
		c += d.deltaCol
	}
	return count
}
