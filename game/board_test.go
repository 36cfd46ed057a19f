package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	t.Run("empty board encodes to zero", func(t *testing.T) {
		var b Board
		require.Equal(t, StateCode(0), b.Encode())
	})

	t.Run("cell k contributes 3^k times its digit", func(t *testing.T) {
		var b Board
		b[0][0] = PlayerX // 1 * 3^0
		b[0][1] = PlayerO // 2 * 3^1
		b[2][2] = PlayerX // 1 * 3^8
		require.Equal(t, StateCode(1+6+6561), b.Encode())
	})

	t.Run("full board of O is the largest code", func(t *testing.T) {
		var b Board
		for i := range b {
			for j := range b[i] {
				b[i][j] = PlayerO
			}
		}
		require.Equal(t, StateCode(NumStates-1), b.Encode())
	})

	t.Run("every board has a distinct code in range", func(t *testing.T) {
		seen := make(map[StateCode]Board, NumStates)
		for code := StateCode(0); code < NumStates; code++ {
			b := Decode(code)
			got := b.Encode()
			require.Equal(t, code, got, "Decode then Encode should round-trip")
			require.GreaterOrEqual(t, int(got), 0)
			require.Less(t, int(got), NumStates)
			prev, dup := seen[got]
			require.False(t, dup, "boards %v and %v share code %d", prev, b, got)
			seen[got] = b
		}
		require.Len(t, seen, NumStates)
	})
}

func TestWinner(t *testing.T) {
	tests := []struct {
		name   string
		board  Board
		winner Player
		won    bool
	}{
		{
			name:   "row of X",
			board:  Board{{PlayerX, PlayerX, PlayerX}, {PlayerO, PlayerO, None}, {None, None, None}},
			winner: PlayerX,
			won:    true,
		},
		{
			name:   "column of O",
			board:  Board{{PlayerX, PlayerO, PlayerX}, {None, PlayerO, None}, {PlayerX, PlayerO, None}},
			winner: PlayerO,
			won:    true,
		},
		{
			name:   "main diagonal",
			board:  Board{{PlayerO, PlayerX, None}, {PlayerX, PlayerO, None}, {None, None, PlayerO}},
			winner: PlayerO,
			won:    true,
		},
		{
			name:   "anti diagonal",
			board:  Board{{PlayerO, PlayerO, PlayerX}, {None, PlayerX, None}, {PlayerX, None, None}},
			winner: PlayerX,
			won:    true,
		},
		{
			name:  "mixed line does not win",
			board: Board{{PlayerX, PlayerO, PlayerX}, {None, None, None}, {None, None, None}},
		},
		{
			name: "empty board",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, ok := tc.board.Winner()
			require.Equal(t, tc.won, ok)
			require.Equal(t, tc.winner, w)
		})
	}
}

func TestEmptyCells(t *testing.T) {
	b := Board{{PlayerX, None, PlayerO}, {None, PlayerX, None}, {PlayerO, PlayerO, None}}
	require.Equal(t, []Move{{0, 1}, {1, 0}, {1, 2}, {2, 2}}, b.EmptyCells())
	require.False(t, b.Full())
}

func TestParsePlayer(t *testing.T) {
	p, ok := ParsePlayer(" x ")
	require.True(t, ok)
	require.Equal(t, PlayerX, p)

	p, ok = ParsePlayer("O")
	require.True(t, ok)
	require.Equal(t, PlayerO, p)

	_, ok = ParsePlayer("z")
	require.False(t, ok)

	require.Equal(t, PlayerO, PlayerX.Opponent())
	require.Equal(t, None, None.Opponent())
}
