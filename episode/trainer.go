package episode

import (
	"context"
	"fmt"
	"time"

	"github.com/cameroncuttingedge/tic_tac_toe_td/agent"
	"github.com/cameroncuttingedge/tic_tac_toe_td/game"
	"github.com/rs/zerolog/log"
)

// Stats collects the outcome of each training episode in order.
type Stats struct {
	Outcomes []game.Player
	XWins    int
	OWins    int
	Draws    int
}

func (s *Stats) add(winner game.Player) {
	s.Outcomes = append(s.Outcomes, winner)
	switch winner {
	case game.PlayerX:
		s.XWins++
	case game.PlayerO:
		s.OWins++
	default:
		s.Draws++
	}
}

func (s *Stats) Episodes() int { return len(s.Outcomes) }

// Rates holds win and draw fractions over one window of episodes.
type Rates struct {
	End   int // index one past the last episode in the window
	XWin  float64
	OWin  float64
	Draw  float64
	Games int
}

// Windowed splits the outcomes into consecutive windows of size n; the last
// window may be shorter.
func (s *Stats) Windowed(n int) []Rates {
	if n <= 0 {
		n = 1
	}
	var out []Rates
	for start := 0; start < len(s.Outcomes); start += n {
		end := min(start+n, len(s.Outcomes))
		r := Rates{End: end, Games: end - start}
		for _, w := range s.Outcomes[start:end] {
			switch w {
			case game.PlayerX:
				r.XWin++
			case game.PlayerO:
				r.OWin++
			default:
				r.Draw++
			}
		}
		g := float64(r.Games)
		r.XWin /= g
		r.OWin /= g
		r.Draw /= g
		out = append(out, r)
	}
	return out
}

// Trainer plays self-play episodes one after another on a single
// environment. Each episode's updates finish before the next one starts.
type Trainer struct {
	env         *game.Environment
	p1, p2      agent.Player
	reportEvery int
}

func NewTrainer(p1, p2 agent.Player, reportEvery int) *Trainer {
	return &Trainer{
		env:         game.NewEnvironment(),
		p1:          p1,
		p2:          p2,
		reportEvery: reportEvery,
	}
}

// Run plays episodes games. Cancellation is checked between episodes only;
// the stats gathered so far are returned with the context error.
func (t *Trainer) Run(ctx context.Context, episodes int) (*Stats, error) {
	stats := &Stats{Outcomes: make([]game.Player, 0, episodes)}
	start := time.Now()
	for i := 0; i < episodes; i++ {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		winner, err := PlayGame(t.env, t.p1, t.p2, nil)
		if err != nil {
			return stats, fmt.Errorf("episode %d: %w", i, err)
		}
		stats.add(winner)
		if t.reportEvery > 0 && (i+1)%t.reportEvery == 0 {
			log.Info().
				Int("episode", i+1).
				Int("xWins", stats.XWins).
				Int("oWins", stats.OWins).
				Int("draws", stats.Draws).
				Msg("Training progress")
		}
	}
	log.Info().
		Int("episodes", episodes).
		Dur("elapsed", time.Since(start)).
		Int("xWins", stats.XWins).
		Int("oWins", stats.OWins).
		Int("draws", stats.Draws).
		Msg("Training finished")
	return stats, nil
}
