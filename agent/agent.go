package agent

import (
	"fmt"
	"math"
	"time"

	"github.com/cameroncuttingedge/tic_tac_toe_td/game"
	"github.com/cameroncuttingedge/tic_tac_toe_td/value"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

const (
	DefaultEpsilon = 0.1
	DefaultAlpha   = 0.5
)

// Agent learns a state-value table by temporal-difference backups and plays
// epsilon-greedy against it.
type Agent struct {
	sym     game.Player
	epsilon float64
	alpha   float64
	values  *value.Table
	history []game.StateCode
	rng     *rand.Rand
	verbose bool
	display Display
}

type Option func(*Agent)

func WithEpsilon(eps float64) Option {
	return func(a *Agent) { a.epsilon = eps }
}

func WithAlpha(alpha float64) Option {
	return func(a *Agent) { a.alpha = alpha }
}

func WithRand(rng *rand.Rand) Option {
	return func(a *Agent) { a.rng = rng }
}

// WithSeed seeds a private generator.
func WithSeed(seed uint64) Option {
	return func(a *Agent) { a.rng = rand.New(rand.NewSource(seed)) }
}

// WithDisplay makes greedy decisions report their candidate values.
func WithDisplay(d Display) Option {
	return func(a *Agent) {
		a.display = d
		a.verbose = d != nil
	}
}

func New(sym game.Player, values *value.Table, options ...Option) *Agent {
	a := &Agent{
		sym:     sym,
		epsilon: DefaultEpsilon,
		alpha:   DefaultAlpha,
		values:  values,
	}
	for _, opt := range options {
		opt(a)
	}
	if a.rng == nil {
		a.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return a
}

func (a *Agent) Symbol() game.Player { return a.sym }

func (a *Agent) Values() *value.Table { return a.values }

func (a *Agent) Epsilon() float64 { return a.epsilon }

func (a *Agent) SetEpsilon(eps float64) { a.epsilon = eps }

func (a *Agent) SetVerbose(v bool) { a.verbose = v }

// History returns a copy of the states recorded this episode.
func (a *Agent) History() []game.StateCode {
	return append([]game.StateCode(nil), a.history...)
}

func (a *Agent) Reset() {
	a.history = a.history[:0]
}

func (a *Agent) Record(state game.StateCode) {
	a.history = append(a.history, state)
}

// TakeAction explores a uniformly random empty cell with probability epsilon
// and otherwise plays the greedy move. The board must not be terminal.
func (a *Agent) TakeAction(env *game.Environment) error {
	moves := env.EmptyCells()
	if len(moves) == 0 {
		return fmt.Errorf("%s to move: %w", a.sym, game.ErrNoMoves)
	}

	var next game.Move
	if a.rng.Float64() < a.epsilon {
		if a.verbose {
			log.Debug().Str("player", a.sym.String()).Msg("Taking a random action")
		}
		next = moves[a.rng.Intn(len(moves))]
	} else {
		var err error
		next, err = a.greedy(env, moves)
		if err != nil {
			return err
		}
	}
	return env.ApplyMove(next.Row, next.Col, a.sym)
}

// greedy scores every empty cell by the value of the state it produces and
// returns the first cell, in row-major order, with the highest value. The
// running best starts at -Inf so any finite value replaces it.
func (a *Agent) greedy(env *game.Environment, moves []game.Move) (game.Move, error) {
	best := math.Inf(-1)
	next := moves[0]
	scored := make([]MoveValue, 0, len(moves))
	for _, m := range moves {
		state, err := env.TrialState(m.Row, m.Col, a.sym)
		if err != nil {
			return game.Move{}, err
		}
		v := a.values.Get(state)
		scored = append(scored, MoveValue{Move: m, Value: v})
		if v > best {
			best = v
			next = m
		}
	}

	if a.verbose {
		log.Debug().
			Str("player", a.sym.String()).
			Int("row", next.Row).
			Int("col", next.Col).
			Float64("value", best).
			Msg("Taking a greedy action")
		if a.display != nil {
			a.display.ShowValues(env.Board(), scored)
		}
	}
	return next, nil
}

// Update runs the backward TD sweep over this episode's states, starting
// from the terminal reward, then clears the history.
func (a *Agent) Update(env *game.Environment) {
	target := env.Reward(a.sym)
	for i := len(a.history) - 1; i >= 0; i-- {
		s := a.history[i]
		v := a.values.Get(s)
		v += a.alpha * (target - v)
		a.values.Set(s, v)
		target = v
	}
	a.Reset()
}
