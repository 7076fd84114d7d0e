package console

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// bold + foreground color, and the reset sequence
const (
	startRed    = "\033[1m\033[31m"
	startYellow = "\033[1m\033[33m"
	resetColor  = "\033[0m"
)

type ColorMode string

const (
	ColorAlways ColorMode = "always"
	ColorAuto   ColorMode = "auto"
	ColorNever  ColorMode = "never"
)

// ParseColorMode maps a config value to a mode. Unknown values fall back
// to ColorAlways.
func ParseColorMode(s string) ColorMode {
	switch ColorMode(strings.ToLower(strings.TrimSpace(s))) {
	case ColorAuto:
		return ColorAuto
	case ColorNever:
		return ColorNever
	}
	return ColorAlways
}

// UseColor decides whether escape sequences should be written to f.
func UseColor(mode ColorMode, f *os.File) bool {
	switch mode {
	case ColorNever:
		return false
	case ColorAuto:
		if f == nil {
			return false
		}
		fd := f.Fd()
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}
	return true
}
