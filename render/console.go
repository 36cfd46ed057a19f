// Package render draws boards and greedy value grids on a text console and
// reads human moves from it.
package render

import (
	"fmt"
	"io"

	"github.com/cameroncuttingedge/tic_tac_toe_td/agent"
	"github.com/cameroncuttingedge/tic_tac_toe_td/game"
	"github.com/logrusorgru/aurora"
)

const separator = "-------------"

type Console struct {
	w  io.Writer
	au aurora.Aurora
}

func NewConsole(w io.Writer, colors bool) *Console {
	return &Console{w: w, au: aurora.NewAurora(colors)}
}

func (c *Console) symbol(p game.Player) aurora.Value {
	switch p {
	case game.PlayerX:
		return c.au.Red("x")
	case game.PlayerO:
		return c.au.Blue("o")
	default:
		return c.au.White(" ")
	}
}

func (c *Console) ShowBoard(board game.Board) {
	for _, row := range board {
		fmt.Fprintln(c.w, separator)
		for _, cell := range row {
			fmt.Fprintf(c.w, "| %s ", c.symbol(cell))
		}
		fmt.Fprintln(c.w, "|")
	}
	fmt.Fprintln(c.w, separator)
}

// ShowValues prints the value of each candidate cell and the pieces already
// on the board.
func (c *Console) ShowValues(board game.Board, values []agent.MoveValue) {
	byMove := make(map[game.Move]float64, len(values))
	for _, mv := range values {
		byMove[mv.Move] = mv.Value
	}
	for i, row := range board {
		fmt.Fprintln(c.w, "-------------------")
		for j, cell := range row {
			if v, ok := byMove[game.Move{Row: i, Col: j}]; ok {
				fmt.Fprintf(c.w, " %s|", c.au.Green(fmt.Sprintf("%.2f", v)))
				continue
			}
			fmt.Fprintf(c.w, "  %s  |", c.symbol(cell))
		}
		fmt.Fprintln(c.w)
	}
	fmt.Fprintln(c.w, "-------------------")
}

func (c *Console) ShowResult(winner game.Player) {
	if winner == game.None {
		fmt.Fprintln(c.w, c.au.Yellow("Draw."))
		return
	}
	fmt.Fprintf(c.w, "%s wins!\n", c.symbol(winner))
}
