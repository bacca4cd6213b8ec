package tictactoe

import (
	"strconv"
	"strings"
)

// Cell marks.
const (
	Empty byte = '.'
	X     byte = 'X'
	O     byte = 'O'
)

// Position is the 3x3 grid in row-major order.
type Position [9]byte

// Move places the mover's mark on an empty cell, indexed 0..8.
type Move int

// Name returns the cell index as a string.
func (m Move) Name() string { return strconv.Itoa(int(m)) }

// Start returns the empty position.
func Start() Position {
	var p Position
	for i := range p {
		p[i] = Empty
	}
	return p
}

// Key returns the grid as a 9-character string, e.g. "X...O....".
func (p Position) Key() string { return string(p[:]) }

// lines are the 8 winning triples: rows, columns, diagonals.
var lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// Winner returns X or O when a line is complete, otherwise Empty.
func Winner(p Position) byte {
	for _, l := range lines {
		a := p[l[0]]
		if a != Empty && a == p[l[1]] && a == p[l[2]] {
			return a
		}
	}
	return Empty
}

// Full reports whether every cell is marked.
func Full(p Position) bool {
	for _, c := range p {
		if c == Empty {
			return false
		}
	}
	return true
}

// Terminal reports whether the game is over.
func Terminal(p Position) bool {
	return Winner(p) != Empty || Full(p)
}

// Mover returns the mark to place next; X always opens.
func Mover(p Position) byte {
	x, o := 0, 0
	for _, c := range p {
		switch c {
		case X:
			x++
		case O:
			o++
		}
	}
	if x > o {
		return O
	}
	return X
}

// Evaluate scores a position from X's side: ±1 for a win, 0 for a draw,
// otherwise open-line potential scaled into (-1, 1) so a static estimate
// never outweighs a real result.
func Evaluate(p Position) float64 {
	switch Winner(p) {
	case X:
		return 1
	case O:
		return -1
	}
	if Full(p) {
		return 0
	}

	openX, openO := 0, 0
	for _, l := range lines {
		hasX, hasO := false, false
		for _, i := range l {
			switch p[i] {
			case X:
				hasX = true
			case O:
				hasO = true
			}
		}
		if !hasO {
			openX++
		}
		if !hasX {
			openO++
		}
	}
	return float64(openX-openO) / 10
}

// Render draws the grid, empty cells as "·".
func Render(p Position) []string {
	rows := make([]string, 3)
	for r := 0; r < 3; r++ {
		var sb strings.Builder
		for c := 0; c < 3; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			cell := p[r*3+c]
			if cell == Empty {
				sb.WriteRune('·')
			} else {
				sb.WriteByte(cell)
			}
		}
		rows[r] = sb.String()
	}
	return rows
}
