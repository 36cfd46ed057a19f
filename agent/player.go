package agent

import (
	"github.com/cameroncuttingedge/tic_tac_toe_td/game"
)

// Player is one side of an episode. The driver calls Record after every
// half-move of either side and Update once the game is over.
type Player interface {
	Symbol() game.Player
	TakeAction(env *game.Environment) error
	Record(state game.StateCode)
	Update(env *game.Environment)
	Reset()
}

// MoveValue pairs a candidate move with the value of the state it leads to.
type MoveValue struct {
	Move  game.Move
	Value float64
}

// Display receives the candidate values of each greedy decision when an
// agent runs verbose.
type Display interface {
	ShowValues(board game.Board, values []MoveValue)
}
