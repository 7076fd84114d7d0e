package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/jj-k-droid/csc-161.connect-four/internal/domain"
)

const separator = "_____________________________"

// Renderer writes the board and game messages to the terminal.
type Renderer struct {
	out   io.Writer
	color bool
}

func NewRenderer(out io.Writer, color bool) *Renderer {
	return &Renderer{out: out, color: color}
}

func (r *Renderer) paint(start, text string) string {
	if !r.color {
		return text
	}
	return start + text + resetColor
}

func markerOf(p domain.PlayerID) (color, letter string) {
	switch p {
	case domain.Player1:
		return startYellow, "Y"
	case domain.Player2:
		return startRed, "R"
	}
	return "", " "
}

// Marker returns the single-letter marker for a player, colored if enabled.
func (r *Renderer) Marker(p domain.PlayerID) string {
	color, letter := markerOf(p)
	if p == domain.Empty {
		return letter
	}
	return r.paint(color, letter)
}

// cell keeps the trailing pad inside the color span
func (r *Renderer) cell(p domain.PlayerID) string {
	color, letter := markerOf(p)
	if p == domain.Empty {
		return letter + " "
	}
	return r.paint(color, letter+" ")
}

// Banner prints the title with the letters alternating red and yellow.
func (r *Renderer) Banner() {
	if !r.color {
		fmt.Fprintln(r.out, "--------- CONNECT 4 ---------")
		return
	}

	var sb strings.Builder
	sb.WriteString("--------- ")
	for i, part := range []string{"C", "O", "N", "N", "E", "C", "T ", "4 "} {
		if i%2 == 0 {
			sb.WriteString(startRed)
		} else {
			sb.WriteString(startYellow)
		}
		sb.WriteString(part)
	}
	sb.WriteString(resetColor)
	sb.WriteString("---------")
	fmt.Fprintln(r.out, sb.String())
}

func (r *Renderer) Board(board domain.Board) {
	var sb strings.Builder

	// column names
	letters := make([]string, domain.Columns)
	for c := range letters {
		letters[c] = string(ColumnLetter(c))
	}
	sb.WriteString("  " + strings.Join(letters, "   ") + "\n")

	for row := 0; row < domain.Rows; row++ {
		for col := 0; col < domain.Columns; col++ {
			sb.WriteString("| ")
			sb.WriteString(r.cell(board.At(row, col)))
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(separator + "\n")

	io.WriteString(r.out, sb.String())
}

// Result announces the winner or the tie. Nothing is printed while the
// game is still in progress.
func (r *Renderer) Result(state domain.State) {
	switch state.Status {
	case domain.StatusWon:
		fmt.Fprintf(r.out, "%s wins!\n", r.Marker(state.Winner))
	case domain.StatusTie:
		fmt.Fprintln(r.out, "It's a tie!")
	}
}
