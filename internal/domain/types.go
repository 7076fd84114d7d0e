package domain

type PlayerID int

const (
	Empty   PlayerID = 0
	Player1 PlayerID = 1 // yellow, always moves first
	Player2 PlayerID = 2 // red
)

// Opponent returns the other player. Empty has no opponent.
func (p PlayerID) Opponent() PlayerID {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	}
	return Empty
}

func (p PlayerID) String() string {
	switch p {
	case Player1:
		return "yellow"
	case Player2:
		return "red"
	}
	return "empty"
}

const (
	Rows    = 6
	Columns = 7
	ToWin   = 4
	Cells   = Rows * Columns
)

// to represent the game status
type GameStatus string

const (
	StatusInProgress GameStatus = "in_progress"
	StatusWon        GameStatus = "won"
	StatusTie        GameStatus = "tie"
)

// State is the result of the game so far. Winner is only set when
// Status is StatusWon.
type State struct {
	Status GameStatus
	Winner PlayerID
}

func (s State) IsFinished() bool {
	return s.Status == StatusWon || s.Status == StatusTie
}

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidColumn Error = "column out of range"
	ErrColumnFull    Error = "column is full"
	ErrGameOver      Error = "game is already finished"
)
