package main

import (
	"errors"
	"io"
	"os"

	"github.com/cameroncuttingedge/tic_tac_toe_td/agent"
	"github.com/cameroncuttingedge/tic_tac_toe_td/episode"
	"github.com/cameroncuttingedge/tic_tac_toe_td/game"
	"github.com/cameroncuttingedge/tic_tac_toe_td/render"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Train, then play against the agent on the console",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signalContext()
		defer cancel()

		sp := newSelfPlay(cfg)
		if _, err := sp.train(ctx, cfg); err != nil {
			return err
		}

		console := render.NewConsole(os.Stdout, cfg.Colors)
		prompt := render.NewPrompt(os.Stdin, os.Stdout)

		humanSym := cfg.Human()
		var options []agent.Option
		if cfg.Verbose {
			options = append(options, agent.WithDisplay(console))
		}
		machine := sp.opponent(humanSym.Opponent(), options...)
		human := agent.NewHuman(humanSym, prompt)

		var p1, p2 agent.Player = machine, human
		if humanSym == game.PlayerX {
			p1, p2 = human, machine
		}

		env := game.NewEnvironment()
		for {
			winner, err := episode.PlayGame(env, p1, p2, console)
			if errors.Is(err, io.EOF) {
				return nil
			}
			if err != nil {
				return err
			}
			console.ShowResult(winner)
			log.Debug().Str("winner", winner.String()).Msg("Console game finished")

			again, err := prompt.Confirm("Play again?")
			if errors.Is(err, io.EOF) {
				return nil
			}
			if err != nil {
				return err
			}
			if !again {
				return nil
			}
		}
	},
}
