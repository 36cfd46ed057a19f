// Package value holds the per-player state-value tables.
package value

import (
	"github.com/cameroncuttingedge/tic_tac_toe_td/game"
)

// Default estimates assigned by Initial.
const (
	WinValue     = 1.0
	LossValue    = 0.0
	NeutralValue = 0.5
)

// Table maps every state code to the owner's estimate of winning from it.
// Each player keeps its own table.
type Table struct {
	values []float64
}

// New returns a zero-initialized table.
func New() *Table {
	return &Table{values: make([]float64, game.NumStates)}
}

// Initial seeds a table for sym from the enumerated states: boards won by
// sym are worth 1, other finished boards 0, and everything else 0.5.
func Initial(sym game.Player, states []game.StateInfo) *Table {
	t := New()
	for _, s := range states {
		switch {
		case s.Ended && s.Winner == sym:
			t.values[s.Code] = WinValue
		case s.Ended:
			t.values[s.Code] = LossValue
		default:
			t.values[s.Code] = NeutralValue
		}
	}
	return t
}

func (t *Table) Get(s game.StateCode) float64 {
	return t.values[s]
}

func (t *Table) Set(s game.StateCode, v float64) {
	t.values[s] = v
}

func (t *Table) Len() int {
	return len(t.values)
}
