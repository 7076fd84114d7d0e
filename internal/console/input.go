package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jj-k-droid/csc-161.connect-four/internal/domain"
)

const prompt = "\nEnter the letter of a column (A-G): "

var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrInputClosed          = errors.New("failed to read input")
	ErrTooManyInvalidInputs = errors.New("too many invalid inputs")
)

// ColumnLetter maps a column index to its header letter.
func ColumnLetter(column int) byte {
	return byte('A' + column)
}

// ParseColumn turns one line of input into a column index. Only a single
// letter A-G is accepted; lowercase a-g only when acceptLowercase is set.
// The whole line counts: "AB" is rejected rather than played as A.
func ParseColumn(line string, acceptLowercase bool) (int, error) {
	line = strings.TrimRight(line, "\r\n")
	if len(line) != 1 {
		return -1, ErrInvalidInput
	}

	ch := line[0]
	if acceptLowercase && ch >= 'a' && ch <= 'z' {
		ch -= 'a' - 'A'
	}
	if ch < 'A' || ch >= ColumnLetter(domain.Columns) {
		return -1, ErrInvalidInput
	}
	return int(ch - 'A'), nil
}

type InputOptions struct {
	AcceptLowercase  bool
	MaxInvalidInputs int // rejected lines per prompt before giving up, 0 = no limit
	Logger           *zerolog.Logger
}

// Reader prompts for moves until it gets a playable column.
type Reader struct {
	in   *bufio.Reader
	out  io.Writer
	opts InputOptions
	log  zerolog.Logger
}

func NewReader(in io.Reader, out io.Writer, opts InputOptions) *Reader {
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	return &Reader{
		in:   bufio.NewReader(in),
		out:  out,
		opts: opts,
		log:  logger,
	}
}

// ReadMove blocks until the player names a column that still has room.
// Bad letters and full columns are reported and re-prompted; only a
// failing input stream (or the invalid-input cap) ends the loop with an error.
func (r *Reader) ReadMove(board domain.Board) (int, error) {
	rejected := 0
	for {
		fmt.Fprint(r.out, prompt)

		line, err := r.in.ReadString('\n')
		if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
			return -1, fmt.Errorf("%w: %w", ErrInputClosed, err)
		}

		column, perr := ParseColumn(line, r.opts.AcceptLowercase)
		switch {
		case perr != nil:
			fmt.Fprintln(r.out, "Invalid input, try again.")
			r.log.Debug().Str("input", strings.TrimRight(line, "\r\n")).Msg("[INPUT] rejected malformed move")
		case !board.CanDrop(column):
			fmt.Fprintf(r.out, "%c is full. Try again.\n", strings.TrimRight(line, "\r\n")[0])
			r.log.Debug().Int("column", column).Msg("[INPUT] rejected full column")
		default:
			return column, nil
		}

		rejected++
		if r.opts.MaxInvalidInputs > 0 && rejected >= r.opts.MaxInvalidInputs {
			return -1, fmt.Errorf("%w: %d in a row", ErrTooManyInvalidInputs, rejected)
		}
	}
}
