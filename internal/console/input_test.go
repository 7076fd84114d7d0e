package console

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jj-k-droid/csc-161.connect-four/internal/domain"
)

func TestParseColumn(t *testing.T) {
	tests := []struct {
		line      string
		lowercase bool
		want      int
		wantErr   bool
	}{
		{line: "A\n", want: 0},
		{line: "G\n", want: 6},
		{line: "D\r\n", want: 3},
		{line: "C", want: 2},
		{line: "H\n", wantErr: true},
		{line: "Z\n", wantErr: true},
		{line: "\n", wantErr: true},
		{line: "", wantErr: true},
		{line: "AB\n", wantErr: true},
		{line: " A\n", wantErr: true},
		{line: "1\n", wantErr: true},
		{line: "a\n", wantErr: true},
		{line: "a\n", lowercase: true, want: 0},
		{line: "g\n", lowercase: true, want: 6},
		{line: "h\n", lowercase: true, wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseColumn(tt.line, tt.lowercase)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidInput, "line %q", tt.line)
			continue
		}
		require.NoError(t, err, "line %q", tt.line)
		assert.Equal(t, tt.want, got, "line %q", tt.line)
	}
}

func TestReadMoveAcceptsValidLetter(t *testing.T) {
	var out bytes.Buffer
	r := NewReader(strings.NewReader("C\n"), &out, InputOptions{})

	col, err := r.ReadMove(domain.NewBoard())
	require.NoError(t, err)
	assert.Equal(t, 2, col)
	assert.Equal(t, prompt, out.String())
}

func TestReadMoveRepromptsOnInvalidInput(t *testing.T) {
	var out bytes.Buffer
	r := NewReader(strings.NewReader("Z\n\nb\nE\n"), &out, InputOptions{})
	board := domain.NewBoard()

	col, err := r.ReadMove(board)
	require.NoError(t, err)
	assert.Equal(t, 4, col)
	assert.Equal(t, 3, strings.Count(out.String(), "Invalid input, try again.\n"))
	assert.Equal(t, 4, strings.Count(out.String(), prompt))
	assert.Equal(t, domain.NewBoard(), board)
}

func TestReadMoveRejectsFullColumn(t *testing.T) {
	board := domain.NewBoard()
	player := domain.Player1
	for i := 0; i < domain.Rows; i++ {
		var err error
		board, _, err = board.Drop(0, player)
		require.NoError(t, err)
		player = player.Opponent()
	}

	var out bytes.Buffer
	r := NewReader(strings.NewReader("A\nB\n"), &out, InputOptions{})

	col, err := r.ReadMove(board)
	require.NoError(t, err)
	assert.Equal(t, 1, col)
	assert.Contains(t, out.String(), "A is full. Try again.\n")
}

func TestReadMoveInputClosed(t *testing.T) {
	var out bytes.Buffer
	r := NewReader(strings.NewReader(""), &out, InputOptions{})

	_, err := r.ReadMove(domain.NewBoard())
	assert.ErrorIs(t, err, ErrInputClosed)
}

func TestReadMoveInvalidThenClosed(t *testing.T) {
	var out bytes.Buffer
	r := NewReader(strings.NewReader("Q"), &out, InputOptions{})

	_, err := r.ReadMove(domain.NewBoard())
	assert.ErrorIs(t, err, ErrInputClosed)
	assert.Contains(t, out.String(), "Invalid input, try again.\n")
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestReadMoveStreamError(t *testing.T) {
	var out bytes.Buffer
	r := NewReader(failingReader{}, &out, InputOptions{})

	_, err := r.ReadMove(domain.NewBoard())
	assert.ErrorIs(t, err, ErrInputClosed)
	assert.ErrorContains(t, err, "boom")
}

func TestReadMoveLastLineWithoutNewline(t *testing.T) {
	var out bytes.Buffer
	r := NewReader(strings.NewReader("F"), &out, InputOptions{})

	col, err := r.ReadMove(domain.NewBoard())
	require.NoError(t, err)
	assert.Equal(t, 5, col)
}

func TestReadMoveInvalidInputCap(t *testing.T) {
	var out bytes.Buffer
	r := NewReader(strings.NewReader("X\nY\nZ\nA\n"), &out, InputOptions{MaxInvalidInputs: 3})

	_, err := r.ReadMove(domain.NewBoard())
	assert.ErrorIs(t, err, ErrTooManyInvalidInputs)
}

func TestReadMoveLowercase(t *testing.T) {
	var out bytes.Buffer
	r := NewReader(strings.NewReader("d\n"), &out, InputOptions{AcceptLowercase: true})

	col, err := r.ReadMove(domain.NewBoard())
	require.NoError(t, err)
	assert.Equal(t, 3, col)
}
