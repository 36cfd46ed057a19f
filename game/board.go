package game

import (
	"strings"
)

// Player is a cell value as well as a side. X and O sum to -3 and +3 along a
// completed line, which is what the win check relies on.
type Player int8

const (
	PlayerX Player = -1
	None    Player = 0
	PlayerO Player = 1
)

// Length is the side of the board.
const Length = 3

// NumStates is 3^9, the size of the state code space.
const NumStates = 19683

// StateCode is the base-3 encoding of a board snapshot, in [0, NumStates).
type StateCode int

type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type Board [Length][Length]Player

var lines = [8][3][2]int{
	{{0, 0}, {0, 1}, {0, 2}}, {{1, 0}, {1, 1}, {1, 2}}, {{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}}, {{0, 1}, {1, 1}, {2, 1}}, {{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}}, {{2, 0}, {1, 1}, {0, 2}},
}

func (p Player) String() string {
	switch p {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return " "
	}
}

// Opponent returns the other side; None stays None.
func (p Player) Opponent() Player {
	return -p
}

// ParsePlayer accepts "x"/"X" and "o"/"O".
func ParsePlayer(s string) (Player, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "X":
		return PlayerX, true
	case "O":
		return PlayerO, true
	}
	return None, false
}

// digit maps a cell to its base-3 digit: empty 0, X 1, O 2.
func (p Player) digit() int {
	switch p {
	case PlayerX:
		return 1
	case PlayerO:
		return 2
	default:
		return 0
	}
}

func fromDigit(d int) Player {
	switch d {
	case 1:
		return PlayerX
	case 2:
		return PlayerO
	default:
		return None
	}
}

// Encode returns the state code of the board. Cell k (row-major) contributes
// 3^k times its digit.
func (b *Board) Encode() StateCode {
	code, pow := 0, 1
	for i := 0; i < Length; i++ {
		for j := 0; j < Length; j++ {
			code += pow * b[i][j].digit()
			pow *= 3
		}
	}
	return StateCode(code)
}

// Decode is the inverse of Encode for codes in [0, NumStates).
func Decode(code StateCode) Board {
	var b Board
	c := int(code)
	for i := 0; i < Length; i++ {
		for j := 0; j < Length; j++ {
			b[i][j] = fromDigit(c % 3)
			c /= 3
		}
	}
	return b
}

// Winner reports the side holding a complete line. A line belongs to p when
// its cells sum to 3*p.
func (b *Board) Winner() (Player, bool) {
	for _, line := range lines {
		sum := 0
		for _, cell := range line {
			sum += int(b[cell[0]][cell[1]])
		}
		for _, p := range [2]Player{PlayerX, PlayerO} {
			if sum == int(p)*Length {
				return p, true
			}
		}
	}
	return None, false
}

func (b *Board) Full() bool {
	for _, row := range b {
		for _, cell := range row {
			if cell == None {
				return false
			}
		}
	}
	return true
}

// EmptyCells lists the unoccupied cells in row-major order.
func (b *Board) EmptyCells() []Move {
	moves := make([]Move, 0, Length*Length)
	for i := 0; i < Length; i++ {
		for j := 0; j < Length; j++ {
			if b[i][j] == None {
				moves = append(moves, Move{Row: i, Col: j})
			}
		}
	}
	return moves
}

func (b *Board) Strings() [Length][Length]string {
	var converted [Length][Length]string
	for i, row := range b {
		for j, cell := range row {
			converted[i][j] = cell.String()
		}
	}
	return converted
}

func (b Board) String() string {
	var sb strings.Builder
	for _, row := range b {
		for _, cell := range row {
			if cell == None {
				sb.WriteString("- ")
			} else {
				sb.WriteString(cell.String() + " ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func inRange(i, j int) bool {
	return i >= 0 && j >= 0 && i < Length && j < Length
}
