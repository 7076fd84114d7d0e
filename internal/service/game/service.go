package game

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/jj-k-droid/csc-161.connect-four/internal/domain"
	"github.com/jj-k-droid/csc-161.connect-four/pkg/uid"
)

type MoveReader interface {
	ReadMove(board domain.Board) (int, error)
}

type BoardRenderer interface {
	Banner()
	Board(board domain.Board)
	Result(state domain.State)
}

// GameSession runs one local game between two players sharing a terminal.
type GameSession struct {
	GameID     string
	Game       *domain.Game
	CreatedAt  time.Time
	FinishedAt time.Time
	reader     MoveReader
	renderer   BoardRenderer
	log        zerolog.Logger
}

func NewGameSession(reader MoveReader, renderer BoardRenderer, logger zerolog.Logger) *GameSession {
	gameID := uid.GenerateGameID()
	return &GameSession{
		GameID:    gameID,
		Game:      domain.NewGame(),
		CreatedAt: time.Now(),
		reader:    reader,
		renderer:  renderer,
		log:       logger.With().Str("game_id", gameID).Logger(),
	}
}

// Run plays the game to the end. The only error it returns comes from
// the move reader and means no further input can be read.
func (gs *GameSession) Run() (domain.State, error) {
	gs.log.Info().Msg("[SESSION] Game started")

	gs.renderer.Banner()
	gs.renderer.Board(gs.Game.Board)

	for !gs.Game.IsFinished() {
		player := gs.Game.CurrentPlayer

		column, err := gs.reader.ReadMove(gs.Game.Board)
		if err != nil {
			gs.log.Error().Err(err).Stringer("player", player).Msg("[SESSION] Input failed, aborting game")
			return gs.Game.State, fmt.Errorf("reading move for %s: %w", player, err)
		}

		if err := gs.HandleMove(column); err != nil {
			// the reader only hands back playable columns, so this is a bug
			return gs.Game.State, err
		}
	}

	return gs.Game.State, nil
}

// HandleMove applies one column choice for the current player, redraws
// the board and announces the result if the move ended the game.
func (gs *GameSession) HandleMove(column int) error {
	player := gs.Game.CurrentPlayer

	row, err := gs.Game.MakeMove(column)
	if err != nil {
		gs.log.Warn().Err(err).Int("column", column).Stringer("player", player).Msg("[GAME] Move rejected")
		return err
	}

	gs.log.Debug().
		Stringer("player", player).
		Int("column", column).
		Int("row", row).
		Int("remaining", gs.Game.Remaining).
		Msg("[GAME] Move accepted")

	gs.renderer.Board(gs.Game.Board)

	if !gs.Game.IsFinished() {
		return nil
	}

	gs.FinishedAt = time.Now()
	gs.renderer.Result(gs.Game.State)

	event := gs.log.Info().
		Str("status", string(gs.Game.State.Status)).
		Int("moves", gs.Game.MoveCount).
		Dur("duration", gs.FinishedAt.Sub(gs.CreatedAt))
	if line, ok := domain.FindLine(gs.Game.Board); ok {
		event = event.Stringer("winner", line.Player).Interface("line", line.Cells)
	}
	event.Msg("[GAME] Game finished")

	return nil
}
