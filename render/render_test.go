package render

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/cameroncuttingedge/tic_tac_toe_td/agent"
	"github.com/cameroncuttingedge/tic_tac_toe_td/game"
	"github.com/stretchr/testify/require"
)

func TestParseMove(t *testing.T) {
	tests := []struct {
		in      string
		want    game.Move
		wantErr bool
	}{
		{in: "1,2", want: game.Move{Row: 1, Col: 2}},
		{in: "0 0", want: game.Move{Row: 0, Col: 0}},
		{in: " 2, 1 ", want: game.Move{Row: 2, Col: 1}},
		{in: "3,3", want: game.Move{Row: 3, Col: 3}},
		{in: "1", wantErr: true},
		{in: "a,b", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseMove(tc.in)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestPrompt(t *testing.T) {
	t.Run("skips malformed lines", func(t *testing.T) {
		var out bytes.Buffer
		p := NewPrompt(strings.NewReader("oops\n1,1\n"), &out)
		m, err := p.NextMove(game.Board{})
		require.NoError(t, err)
		require.Equal(t, game.Move{Row: 1, Col: 1}, m)
		require.Equal(t, 2, strings.Count(out.String(), "Enter coordinates"))
	})

	t.Run("end of input", func(t *testing.T) {
		p := NewPrompt(strings.NewReader(""), io.Discard)
		_, err := p.NextMove(game.Board{})
		require.ErrorIs(t, err, io.EOF)
	})

	t.Run("confirm", func(t *testing.T) {
		p := NewPrompt(strings.NewReader("\nn\nyes\n"), io.Discard)
		for _, want := range []bool{true, false, true} {
			got, err := p.Confirm("Play again?")
			require.NoError(t, err)
			require.Equal(t, want, got)
		}
	})
}

func TestConsole(t *testing.T) {
	board := game.Board{
		{game.PlayerX, game.None, game.None},
		{game.None, game.PlayerO, game.None},
		{game.None, game.None, game.None},
	}

	t.Run("board", func(t *testing.T) {
		var out bytes.Buffer
		NewConsole(&out, false).ShowBoard(board)
		require.Equal(t,
			"-------------\n"+
				"| x |   |   |\n"+
				"-------------\n"+
				"|   | o |   |\n"+
				"-------------\n"+
				"|   |   |   |\n"+
				"-------------\n",
			out.String())
	})

	t.Run("values", func(t *testing.T) {
		var out bytes.Buffer
		NewConsole(&out, false).ShowValues(board, []agent.MoveValue{
			{Move: game.Move{Row: 0, Col: 1}, Value: 0.25},
			{Move: game.Move{Row: 2, Col: 2}, Value: 1},
		})
		lines := strings.Split(out.String(), "\n")
		require.Equal(t, "  x  | 0.25|     |", lines[1])
		require.Equal(t, "     |     | 1.00|", lines[5])
	})

	t.Run("result", func(t *testing.T) {
		var out bytes.Buffer
		c := NewConsole(&out, false)
		c.ShowResult(game.None)
		c.ShowResult(game.PlayerO)
		require.Equal(t, "Draw.\no wins!\n", out.String())
	})
}
