package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cameroncuttingedge/tic_tac_toe_td/events"
	"github.com/rs/zerolog/log"
)

// Opponent is the machine side of a session. It observes every state and
// learns when the game ends.
type Opponent interface {
	TakeAction(env *Environment) error
	Record(state StateCode)
	Update(env *Environment)
	Reset()
}

const (
	StatusActive = "active"
	StatusOver   = "over"
)

var (
	ErrInvalidPlayer = errors.New("invalid player")
	ErrNotYourTurn   = errors.New("it's not your turn")
	ErrNotActive     = errors.New("game is not active")
)

// Game is a session between one human and an opponent on a shared
// environment. X always opens.
type Game struct {
	ID          string
	Human       string
	HumanSymbol Player
	Turn        Player
	Winner      Player
	Over        bool
	Status      string
	Games       int

	env      *Environment
	opponent Opponent
}

// NewGame opens a session. When the human plays O the opponent makes the
// first move right away.
func NewGame(gameID string, humanID string, humanSymbol Player, opponent Opponent) (*Game, error) {
	if humanSymbol != PlayerX && humanSymbol != PlayerO {
		return nil, ErrBadSymbol
	}
	g := &Game{
		ID:          gameID,
		Human:       humanID,
		HumanSymbol: humanSymbol,
		env:         NewEnvironment(),
		opponent:    opponent,
	}
	if err := g.start(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) start() error {
	g.env.Reset()
	g.opponent.Reset()
	g.Turn = PlayerX
	g.Winner = None
	g.Over = false
	g.Status = StatusActive
	g.Games++
	if g.HumanSymbol != PlayerX {
		return g.opponentMove()
	}
	return nil
}

// MakeMove applies the human's move at (x,y) and lets the opponent reply
// unless the game ended.
func (g *Game) MakeMove(username string, x, y int) error {
	if !g.IsValidPlayer(username) {
		return fmt.Errorf("%w: %s", ErrInvalidPlayer, username)
	}
	if g.Status != StatusActive {
		return ErrNotActive
	}
	if g.Turn != g.HumanSymbol {
		return ErrNotYourTurn
	}
	if err := g.env.ApplyMove(x, y, g.HumanSymbol); err != nil {
		return err
	}
	if g.afterMove() {
		g.PublishState()
		return nil
	}
	if err := g.opponentMove(); err != nil {
		return err
	}
	g.PublishState()
	return nil
}

func (g *Game) opponentMove() error {
	if err := g.opponent.TakeAction(g.env); err != nil {
		return fmt.Errorf("opponent move: %w", err)
	}
	g.afterMove()
	return nil
}

// afterMove records the new state with the opponent, flips the turn and
// settles the game once terminal. It reports whether the game ended.
func (g *Game) afterMove() bool {
	g.opponent.Record(g.env.State())
	g.Turn = g.Turn.Opponent()
	if !g.env.GameOver(false) {
		return false
	}
	g.Over = true
	g.Status = StatusOver
	g.Winner = g.env.Winner()
	g.opponent.Update(g.env)
	log.Info().
		Str("gameID", g.ID).
		Str("winner", g.Winner.String()).
		Int("games", g.Games).
		Msg("Game finished")
	return true
}

// RequestRestart starts a fresh game in the same session.
func (g *Game) RequestRestart(playerID string) error {
	if !g.IsValidPlayer(playerID) {
		return fmt.Errorf("%w: %s", ErrInvalidPlayer, playerID)
	}
	log.Info().Str("playerID", playerID).Str("gameID", g.ID).Msg("Restart requested")
	if err := g.start(); err != nil {
		return err
	}
	g.PublishState()
	return nil
}

func (g *Game) IsValidPlayer(username string) bool {
	return username != "" && username == g.Human
}

func (g *Game) Board() Board {
	return g.env.Board()
}

// Snapshot returns the state as published to listeners.
func (g *Game) Snapshot() events.GameState {
	board := g.env.Board()
	return events.GameState{
		ID:          g.ID,
		Board:       board.Strings(),
		Turn:        g.Turn.String(),
		Winner:      strings.TrimSpace(g.Winner.String()),
		Over:        g.Over,
		Human:       g.Human,
		HumanSymbol: g.HumanSymbol.String(),
		Status:      g.Status,
		Games:       g.Games,
	}
}

// PublishState hands the snapshot to the event listener without blocking
// when nobody drains the channel.
func (g *Game) PublishState() {
	select {
	case events.EventChannel <- events.GameEvent{Data: g.Snapshot()}:
		log.Debug().Str("gameID", g.ID).Msg("Published game state")
	default:
		log.Warn().Str("gameID", g.ID).Msg("Event channel full, dropping game state")
	}
}

// GameState returns a string representation of the current game state
func (g *Game) GameState() string {
	var sb strings.Builder

	sb.WriteString("Current Board:\n")
	sb.WriteString(g.env.Board().String())

	sb.WriteString(fmt.Sprintf("Turn: %s\n", g.Turn))
	sb.WriteString(fmt.Sprintf("Status: %s\n", g.Status))
	sb.WriteString(fmt.Sprintf("Human: %s (%s)\n", g.Human, g.HumanSymbol))
	if g.Over {
		sb.WriteString("Game Over: Yes\n")
		if g.Winner != None {
			sb.WriteString(fmt.Sprintf("Winner: %s\n", g.Winner))
		} else {
			sb.WriteString("Winner: None (Draw)\n")
		}
	} else {
		sb.WriteString("Game Over: No\n")
	}

	return sb.String()
}
