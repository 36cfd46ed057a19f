package render

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cameroncuttingedge/tic_tac_toe_td/game"
)

// Prompt reads "i,j" moves and yes/no answers line by line.
type Prompt struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewPrompt(in io.Reader, out io.Writer) *Prompt {
	return &Prompt{in: bufio.NewScanner(in), out: out}
}

func (p *Prompt) readLine() (string, error) {
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// NextMove asks until the input parses as two coordinates. Whether the cell
// is free is left to the caller.
func (p *Prompt) NextMove(game.Board) (game.Move, error) {
	for {
		fmt.Fprint(p.out, "Enter coordinates i,j for your next move (i,j=0..2): ")
		line, err := p.readLine()
		if err != nil {
			return game.Move{}, err
		}
		m, err := ParseMove(line)
		if err != nil {
			fmt.Fprintln(p.out, err)
			continue
		}
		return m, nil
	}
}

// Confirm asks a yes/no question; an empty answer counts as yes.
func (p *Prompt) Confirm(question string) (bool, error) {
	fmt.Fprintf(p.out, "%s [Y/n]: ", question)
	line, err := p.readLine()
	if err != nil {
		return false, err
	}
	switch strings.ToLower(line) {
	case "", "y", "yes":
		return true, nil
	}
	return false, nil
}

// ParseMove accepts "i,j" or "i j".
func ParseMove(s string) (game.Move, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	if len(fields) != 2 {
		return game.Move{}, fmt.Errorf("expected two coordinates, got %q", s)
	}
	i, err := strconv.Atoi(fields[0])
	if err != nil {
		return game.Move{}, fmt.Errorf("invalid row %q: %w", fields[0], err)
	}
	j, err := strconv.Atoi(fields[1])
	if err != nil {
		return game.Move{}, fmt.Errorf("invalid column %q: %w", fields[1], err)
	}
	return game.Move{Row: i, Col: j}, nil
}
