package domain

type Game struct {
	Board         Board
	CurrentPlayer PlayerID
	State         State
	Remaining     int
	MoveCount     int
}

func NewGame() *Game {
	return &Game{
		Board:         NewBoard(),
		CurrentPlayer: Player1,
		State:         State{Status: StatusInProgress, Winner: Empty},
		Remaining:     Cells,
		MoveCount:     0,
	}
}

// MakeMove drops a disk for the current player. The win check runs before
// the tie check so a winning last disk is never reported as a tie.
func (g *Game) MakeMove(column int) (int, error) {
	if g.State.IsFinished() {
		return -1, ErrGameOver
	}

	board, row, err := g.Board.Drop(column, g.CurrentPlayer)
	if err != nil {
		return -1, err
	}

	g.Board = board
	g.Remaining--
	g.MoveCount++

	if CheckWin(g.Board) {
		g.State = State{Status: StatusWon, Winner: g.CurrentPlayer}
		return row, nil
	}

	// a full board is a tie even if the counter has drifted
	if g.Remaining == 0 || g.Board.IsFull() {
		g.Remaining = 0
		g.State = State{Status: StatusTie, Winner: Empty}
		return row, nil
	}

	g.CurrentPlayer = g.CurrentPlayer.Opponent()

	return row, nil
}

func (g *Game) IsFinished() bool {
	return g.State.IsFinished()
}
