package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// firstFree plays the first empty cell and counts the hooks it receives.
type firstFree struct {
	sym      Player
	recorded []StateCode
	updates  int
	resets   int
}

func (f *firstFree) TakeAction(env *Environment) error {
	cells := env.EmptyCells()
	if len(cells) == 0 {
		return ErrNoMoves
	}
	return env.ApplyMove(cells[0].Row, cells[0].Col, f.sym)
}

func (f *firstFree) Record(s StateCode)  { f.recorded = append(f.recorded, s) }
func (f *firstFree) Update(*Environment) { f.updates++ }
func (f *firstFree) Reset()              { f.recorded = nil; f.resets++ }

func TestNewGame(t *testing.T) {
	t.Run("human as X moves first", func(t *testing.T) {
		opp := &firstFree{sym: PlayerO}
		g, err := NewGame("g1", "alice", PlayerX, opp)
		require.NoError(t, err)
		require.Equal(t, PlayerX, g.Turn)
		require.Equal(t, Board{}, g.Board())
		require.Equal(t, StatusActive, g.Status)
	})

	t.Run("human as O lets the opponent open", func(t *testing.T) {
		opp := &firstFree{sym: PlayerX}
		g, err := NewGame("g2", "alice", PlayerO, opp)
		require.NoError(t, err)
		require.Equal(t, PlayerO, g.Turn)
		require.Equal(t, PlayerX, g.Board()[0][0])
		require.Len(t, opp.recorded, 1)
	})

	t.Run("rejects empty symbol", func(t *testing.T) {
		_, err := NewGame("g3", "alice", None, &firstFree{})
		require.ErrorIs(t, err, ErrBadSymbol)
	})
}

func TestMakeMove(t *testing.T) {
	t.Run("opponent replies and records both states", func(t *testing.T) {
		opp := &firstFree{sym: PlayerO}
		g, err := NewGame("g1", "alice", PlayerX, opp)
		require.NoError(t, err)

		require.NoError(t, g.MakeMove("alice", 1, 1))
		b := g.Board()
		require.Equal(t, PlayerX, b[1][1])
		require.Equal(t, PlayerO, b[0][0])
		require.Len(t, opp.recorded, 2)
		require.Equal(t, b.Encode(), opp.recorded[1])
		require.Equal(t, PlayerX, g.Turn)
	})

	t.Run("rejects strangers, occupied cells and moves after the end", func(t *testing.T) {
		opp := &firstFree{sym: PlayerO}
		g, err := NewGame("g1", "alice", PlayerX, opp)
		require.NoError(t, err)

		require.ErrorIs(t, g.MakeMove("bob", 0, 0), ErrInvalidPlayer)
		require.NoError(t, g.MakeMove("alice", 2, 0))
		require.ErrorIs(t, g.MakeMove("alice", 0, 0), ErrOccupied)

		// O takes row 0 from the left, one short of X completing row 2.
		require.NoError(t, g.MakeMove("alice", 2, 2))
		require.NoError(t, g.MakeMove("alice", 2, 1))
		require.True(t, g.Over)
		require.Equal(t, PlayerX, g.Winner)
		require.Equal(t, StatusOver, g.Status)
		require.Equal(t, 1, opp.updates)
		require.ErrorIs(t, g.MakeMove("alice", 1, 1), ErrNotActive)
	})

	t.Run("restart clears the board", func(t *testing.T) {
		opp := &firstFree{sym: PlayerO}
		g, err := NewGame("g1", "alice", PlayerX, opp)
		require.NoError(t, err)
		require.NoError(t, g.MakeMove("alice", 1, 1))

		require.ErrorIs(t, g.RequestRestart("bob"), ErrInvalidPlayer)
		require.NoError(t, g.RequestRestart("alice"))
		require.Equal(t, Board{}, g.Board())
		require.Equal(t, 2, g.Games)
		require.Empty(t, opp.recorded)
	})
}

func TestSnapshot(t *testing.T) {
	opp := &firstFree{sym: PlayerO}
	g, err := NewGame("g1", "alice", PlayerX, opp)
	require.NoError(t, err)
	require.NoError(t, g.MakeMove("alice", 1, 1))

	s := g.Snapshot()
	require.Equal(t, "g1", s.ID)
	require.Equal(t, "X", s.Board[1][1])
	require.Equal(t, "O", s.Board[0][0])
	require.Equal(t, " ", s.Board[2][2])
	require.Equal(t, "X", s.HumanSymbol)
	require.Equal(t, "", s.Winner)
	require.Contains(t, g.GameState(), "Game Over: No")
}
