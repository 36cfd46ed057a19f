package game

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfRange = errors.New("coordinates are out of bounds")
	ErrOccupied   = errors.New("cell is already occupied")
	ErrGameOver   = errors.New("game is over")
	ErrNoMoves    = errors.New("no empty cells left")
	ErrBadSymbol  = errors.New("symbol must be X or O")
)

// Environment owns the board of one game and answers legality, terminal and
// reward questions about it.
type Environment struct {
	board Board

	// terminal result cache; valid only while evaluated is true
	evaluated bool
	ended     bool
	winner    Player
}

func NewEnvironment() *Environment {
	return &Environment{}
}

// Reset clears the board for a new game.
func (e *Environment) Reset() {
	e.board = Board{}
	e.invalidate()
}

// Board returns a snapshot; mutating it does not affect the environment.
func (e *Environment) Board() Board {
	return e.board
}

func (e *Environment) State() StateCode {
	return e.board.Encode()
}

// IsEmpty reports whether cell (i,j) is free. Coordinates outside the grid
// are a caller bug and panic.
func (e *Environment) IsEmpty(i, j int) bool {
	if !inRange(i, j) {
		panic(fmt.Sprintf("cell (%d,%d): %v", i, j, ErrOutOfRange))
	}
	return e.board[i][j] == None
}

func (e *Environment) EmptyCells() []Move {
	return e.board.EmptyCells()
}

// ApplyMove places sym at (i,j). Any successful move drops the cached
// terminal result.
func (e *Environment) ApplyMove(i, j int, sym Player) error {
	if sym != PlayerX && sym != PlayerO {
		return ErrBadSymbol
	}
	if !inRange(i, j) {
		return fmt.Errorf("cell (%d,%d): %w", i, j, ErrOutOfRange)
	}
	if e.GameOver(false) {
		return ErrGameOver
	}
	if e.board[i][j] != None {
		return fmt.Errorf("cell (%d,%d): %w", i, j, ErrOccupied)
	}
	e.board[i][j] = sym
	e.invalidate()
	return nil
}

// TrialState returns the state code the board would have after sym is placed
// at (i,j). The board is restored before returning.
func (e *Environment) TrialState(i, j int, sym Player) (StateCode, error) {
	if sym != PlayerX && sym != PlayerO {
		return 0, ErrBadSymbol
	}
	if !inRange(i, j) {
		return 0, fmt.Errorf("cell (%d,%d): %w", i, j, ErrOutOfRange)
	}
	if e.board[i][j] != None {
		return 0, fmt.Errorf("cell (%d,%d): %w", i, j, ErrOccupied)
	}
	e.board[i][j] = sym
	defer func() { e.board[i][j] = None }()
	return e.board.Encode(), nil
}

// GameOver checks the 8 lines and board occupancy. A cached result is
// returned unless forceRecalculate is set or the board changed since.
func (e *Environment) GameOver(forceRecalculate bool) bool {
	if !forceRecalculate && e.evaluated {
		return e.ended
	}
	e.winner = None
	e.ended = false
	if w, ok := e.board.Winner(); ok {
		e.winner = w
		e.ended = true
	} else if e.board.Full() {
		e.ended = true
	}
	e.evaluated = true
	return e.ended
}

// Winner is None both while the game runs and after a draw; use GameOver to
// tell them apart.
func (e *Environment) Winner() Player {
	e.GameOver(false)
	return e.winner
}

// Reward is 1 when the game is over and sym won, 0 otherwise.
func (e *Environment) Reward(sym Player) float64 {
	if !e.GameOver(false) {
		return 0
	}
	if e.winner == sym && sym != None {
		return 1
	}
	return 0
}

func (e *Environment) invalidate() {
	e.evaluated = false
	e.ended = false
	e.winner = None
}
