package main

import (
	"context"
	"time"

	"github.com/cameroncuttingedge/tic_tac_toe_td/agent"
	"github.com/cameroncuttingedge/tic_tac_toe_td/config"
	"github.com/cameroncuttingedge/tic_tac_toe_td/episode"
	"github.com/cameroncuttingedge/tic_tac_toe_td/game"
	"github.com/cameroncuttingedge/tic_tac_toe_td/report"
	"github.com/cameroncuttingedge/tic_tac_toe_td/value"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Run self-play training and report the outcomes",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signalContext()
		defer cancel()

		sp := newSelfPlay(cfg)
		_, err := sp.train(ctx, cfg)
		return err
	},
}

// selfPlay is the pair of learning agents and the trainer driving them.
type selfPlay struct {
	rng     *rand.Rand
	x, o    *agent.Agent
	trainer *episode.Trainer
}

func newSelfPlay(cfg *config.Config) *selfPlay {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(seed))

	states := game.EnumerateStates()
	x := agent.New(game.PlayerX, value.Initial(game.PlayerX, states),
		agent.WithEpsilon(cfg.Epsilon), agent.WithAlpha(cfg.Alpha), agent.WithRand(rng))
	o := agent.New(game.PlayerO, value.Initial(game.PlayerO, states),
		agent.WithEpsilon(cfg.Epsilon), agent.WithAlpha(cfg.Alpha), agent.WithRand(rng))

	return &selfPlay{
		rng:     rng,
		x:       x,
		o:       o,
		trainer: episode.NewTrainer(x, o, cfg.ReportEvery),
	}
}

func (sp *selfPlay) train(ctx context.Context, cfg *config.Config) (*episode.Stats, error) {
	log.Info().
		Int("episodes", cfg.Episodes).
		Float64("epsilon", cfg.Epsilon).
		Float64("alpha", cfg.Alpha).
		Msg("Starting self-play training")

	stats, err := sp.trainer.Run(ctx, cfg.Episodes)
	if err != nil {
		return stats, err
	}
	if cfg.ChartPath != "" {
		if err := report.WriteFile(cfg.ChartPath, stats, cfg.ChartWindow); err != nil {
			return stats, err
		}
		log.Info().Str("path", cfg.ChartPath).Msg("Wrote training chart")
	}
	return stats, nil
}

// opponent returns a fresh agent for side sym that shares the trained
// table of that side.
func (sp *selfPlay) opponent(sym game.Player, options ...agent.Option) *agent.Agent {
	trained := sp.x
	if sym == game.PlayerO {
		trained = sp.o
	}
	options = append([]agent.Option{
		agent.WithEpsilon(trained.Epsilon()),
		agent.WithAlpha(cfg.Alpha),
		agent.WithRand(sp.rng),
	}, options...)
	return agent.New(sym, trained.Values(), options...)
}
