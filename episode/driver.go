// Package episode runs games between two players and sequential training
// over many games.
package episode

import (
	"fmt"

	"github.com/cameroncuttingedge/tic_tac_toe_td/agent"
	"github.com/cameroncuttingedge/tic_tac_toe_td/game"
)

// BoardDisplay shows the board between moves. Optional.
type BoardDisplay interface {
	ShowBoard(board game.Board)
}

// PlayGame plays one game on env from an empty board, p1 moving first. Both
// players record the state after every half-move and learn once the game
// is over. It returns the winner, None for a draw.
func PlayGame(env *game.Environment, p1, p2 agent.Player, display BoardDisplay) (game.Player, error) {
	env.Reset()
	p1.Reset()
	p2.Reset()

	current := p2
	for !env.GameOver(false) {
		if current == p1 {
			current = p2
		} else {
			current = p1
		}
		if display != nil {
			display.ShowBoard(env.Board())
		}
		if err := current.TakeAction(env); err != nil {
			return game.None, fmt.Errorf("%s move: %w", current.Symbol(), err)
		}
		state := env.State()
		p1.Record(state)
		p2.Record(state)
	}
	if display != nil {
		display.ShowBoard(env.Board())
	}

	p1.Update(env)
	p2.Update(env)
	return env.Winner(), nil
}
