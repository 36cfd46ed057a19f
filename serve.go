package main

import (
	"github.com/cameroncuttingedge/tic_tac_toe_td/api"
	"github.com/cameroncuttingedge/tic_tac_toe_td/game"
	"github.com/cameroncuttingedge/tic_tac_toe_td/websocket"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Train, then serve games against the agent over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signalContext()
		defer cancel()

		sp := newSelfPlay(cfg)
		if _, err := sp.train(ctx, cfg); err != nil {
			return err
		}

		websocket.StartEventListening()
		log.Info().Msg("Starting App")
		return api.StartAPI(cfg.Addr, func(sym game.Player) game.Opponent {
			return sp.opponent(sym)
		})
	},
}
