// Package logging builds the diagnostic logger. Game output goes to stdout;
// the log always goes to stderr so the two never interleave on a pipe.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/rs/zerolog"
)

// New returns a console logger writing to w at the given level. An
// unparsable level disables logging.
func New(w io.Writer, level string, color bool) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.Disabled
	}

	out := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    !color,
		TimeFormat: time.TimeOnly,
	}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}

// Colorable wraps terminal files so ANSI sequences render on Windows
// consoles too. Other writers are returned as they are.
func Colorable(w io.Writer) io.Writer {
	if f, ok := w.(*os.File); ok {
		return colorable.NewColorable(f)
	}
	return w
}
