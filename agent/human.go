package agent

import (
	"errors"
	"fmt"

	"github.com/cameroncuttingedge/tic_tac_toe_td/game"
	"github.com/rs/zerolog/log"
)

// MoveSource supplies moves for a human player, e.g. a console prompt.
type MoveSource interface {
	NextMove(board game.Board) (game.Move, error)
}

// Human plays moves read from a MoveSource. It keeps no value table, so
// Record and Update do nothing.
type Human struct {
	sym    game.Player
	source MoveSource
}

func NewHuman(sym game.Player, source MoveSource) *Human {
	return &Human{sym: sym, source: source}
}

func (h *Human) Symbol() game.Player { return h.sym }

// TakeAction asks the source again until it names a free cell.
func (h *Human) TakeAction(env *game.Environment) error {
	for {
		m, err := h.source.NextMove(env.Board())
		if err != nil {
			return fmt.Errorf("reading move: %w", err)
		}
		err = env.ApplyMove(m.Row, m.Col, h.sym)
		if errors.Is(err, game.ErrOutOfRange) || errors.Is(err, game.ErrOccupied) {
			log.Warn().Err(err).Int("row", m.Row).Int("col", m.Col).Msg("Rejected move")
			continue
		}
		return err
	}
}

func (h *Human) Record(game.StateCode) {}

func (h *Human) Update(*game.Environment) {}

func (h *Human) Reset() {}
