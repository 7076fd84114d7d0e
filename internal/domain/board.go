package domain

// Board is the 7x6 grid stored row-major, top row first.
// It is a value type: Drop hands back a new board and leaves the old one alone.
type Board [Cells]PlayerID

func NewBoard() Board {
	return Board{}
}

func index(row, column int) int {
	return row*Columns + column
}

func inBounds(row, column int) bool {
	return row >= 0 && row < Rows && column >= 0 && column < Columns
}

// At returns the cell at row (0 = top) and column (0 = A).
func (b Board) At(row, column int) PlayerID {
	if !inBounds(row, column) {
		return Empty
	}
	return b[index(row, column)]
}

// CanDrop reports whether column exists and its top cell is still empty.
func (b Board) CanDrop(column int) bool {
	if column < 0 || column >= Columns {
		return false
	}

	// row 0 is the top row, so a filled top cell means the column is full
	return b[index(0, column)] == Empty
}

func (b Board) Drop(column int, player PlayerID) (Board, int, error) {
	if column < 0 || column >= Columns {
		return b, -1, ErrInvalidColumn
	}

	// shifting the disk from top to bottom till it
	// reaches the end or another disk
	for row := Rows - 1; row >= 0; row-- {
		if b[index(row, column)] == Empty {
			b[index(row, column)] = player
			return b, row, nil
		}
	}

	return b, -1, ErrColumnFull
}

// Remaining counts the empty cells left on the board.
func (b Board) Remaining() int {
	n := 0
	for _, cell := range b {
		if cell == Empty {
			n++
		}
	}
	return n
}

func (b Board) IsFull() bool {
	for c := 0; c < Columns; c++ {
		if b.CanDrop(c) {
			return false
		}
	}
	return true
}
