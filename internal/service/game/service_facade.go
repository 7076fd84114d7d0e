package game

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/jj-k-droid/csc-161.connect-four/internal/config"
	"github.com/jj-k-droid/csc-161.connect-four/internal/console"
)

// Service is the entry point for game logic (facade)
type Service struct {
	Config *config.Config
	In     io.Reader
	Out    io.Writer
	Color  bool
	Log    zerolog.Logger
}

func NewService(cfg *config.Config, in io.Reader, out io.Writer, color bool, logger zerolog.Logger) *Service {
	return &Service{
		Config: cfg,
		In:     in,
		Out:    out,
		Color:  color,
		Log:    logger,
	}
}

// NewSession wires a console reader and renderer to a fresh game.
func (s *Service) NewSession() *GameSession {
	reader := console.NewReader(s.In, s.Out, console.InputOptions{
		AcceptLowercase:  s.Config.AcceptLowercase,
		MaxInvalidInputs: s.Config.MaxInvalidInputs,
		Logger:           &s.Log,
	})
	renderer := console.NewRenderer(s.Out, s.Color)
	return NewGameSession(reader, renderer, s.Log)
}
