package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"

	"github.com/jj-k-droid/csc-161.connect-four/internal/config"
	"github.com/jj-k-droid/csc-161.connect-four/internal/console"
	"github.com/jj-k-droid/csc-161.connect-four/internal/logging"
	"github.com/jj-k-droid/csc-161.connect-four/internal/service/game"
)

func main() {
	// .env is optional; a missing file is the normal case
	_ = godotenv.Load()

	os.Exit(run(os.Stdin, os.Stdout, os.Stderr))
}

// run plays one game and returns the process exit status.
func run(stdin io.Reader, stdout, stderr io.Writer) int {
	config.LoadConfig()
	cfg := config.AppConfig

	mode := console.ParseColorMode(cfg.ColorMode)
	logger := logging.New(logging.Colorable(stderr), cfg.LogLevel, logColor(mode, stderr))

	svc := game.NewService(cfg, stdin, logging.Colorable(stdout), useColor(mode, stdout), logger)
	session := svc.NewSession()

	if _, err := session.Run(); err != nil {
		if errors.Is(err, console.ErrTooManyInvalidInputs) {
			fmt.Fprintln(stderr, "Too many invalid inputs, giving up.")
		} else {
			fmt.Fprintln(stderr, "Failed to read input from user.")
		}
		return 1
	}
	return 0
}

func useColor(mode console.ColorMode, w io.Writer) bool {
	f, _ := w.(*os.File)
	return console.UseColor(mode, f)
}

// logColor only colors the log when stderr itself is a terminal; the
// color setting is about the board on stdout.
func logColor(mode console.ColorMode, stderr io.Writer) bool {
	if mode == console.ColorNever {
		return false
	}
	return useColor(console.ColorAuto, stderr)
}
