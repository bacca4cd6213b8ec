package puzzle

import "strings"

// Size is the grid dimension.
const Size = 3

// Cells is the tile count including the blank.
const Cells = Size * Size

// Board is a row-major 3x3 tile arrangement. 0 is the blank.
type Board [Cells]int

// Move slides the blank one cell in a direction.
type Move int

const (
	MoveUp Move = iota
	MoveDown
	MoveLeft
	MoveRight
)

var moveNames = [...]string{"up", "down", "left", "right"}

// Name returns the lowercase direction label.
func (m Move) Name() string {
	if m < MoveUp || m > MoveRight {
		return "?"
	}
	return moveNames[m]
}

// Key returns the board as a 9-digit string, e.g. "123480765".
func (b Board) Key() string {
	var sb strings.Builder
	sb.Grow(Cells)
	for _, v := range b {
		sb.WriteByte(byte('0' + v))
	}
	return sb.String()
}

// Blank returns the index of the blank cell.
func (b Board) Blank() int {
	for i, v := range b {
		if v == 0 {
			return i
		}
	}
	return -1
}

// Apply slides the blank in the given direction.
// Returns the updated board and whether the move stayed on the grid.
func Apply(b Board, m Move) (Board, bool) {
	i := b.Blank()
	r, c := i/Size, i%Size

	j := -1
	switch m {
	case MoveUp:
		if r > 0 {
			j = i - Size
		}
	case MoveDown:
		if r < Size-1 {
			j = i + Size
		}
	case MoveLeft:
		if c > 0 {
			j = i - 1
		}
	case MoveRight:
		if c < Size-1 {
			j = i + 1
		}
	}
	if j < 0 {
		return b, false
	}

	b[i], b[j] = b[j], b[i]
	return b, true
}

// Moves returns the legal blank moves in fixed order (up, down, left, right).
func Moves(b Board) []Move {
	moves := make([]Move, 0, 4)
	for m := MoveUp; m <= MoveRight; m++ {
		if _, ok := Apply(b, m); ok {
			moves = append(moves, m)
		}
	}
	return moves
}

// Manhattan sums the grid distance of every tile (blank excluded) from its
// position in goal. Admissible and consistent for unit-cost blank moves.
func Manhattan(b, goal Board) float64 {
	var pos [Cells]int
	for i, v := range goal {
		pos[v] = i
	}

	total := 0
	for i, v := range b {
		if v == 0 {
			continue
		}
		g := pos[v]
		dr := i/Size - g/Size
		dc := i%Size - g%Size
		if dr < 0 {
			dr = -dr
		}
		if dc < 0 {
			dc = -dc
		}
		total += dr + dc
	}
	return float64(total)
}

// inversions counts tile pairs that appear out of order, blank excluded.
func inversions(b Board) int {
	n := 0
	for i := 0; i < Cells; i++ {
		if b[i] == 0 {
			continue
		}
		for j := i + 1; j < Cells; j++ {
			if b[j] != 0 && b[i] > b[j] {
				n++
			}
		}
	}
	return n
}

// Solvable reports whether b can reach goal. On an odd-width grid blank
// moves never change inversion parity, so the parities must match.
func Solvable(b, goal Board) bool {
	return inversions(b)%2 == inversions(goal)%2
}

// Valid reports whether b is a permutation of 0..8.
func Valid(b Board) bool {
	var seen [Cells]bool
	for _, v := range b {
		if v < 0 || v >= Cells || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

// Render draws the board as three lines of tiles, blank as "·".
func Render(b Board) []string {
	lines := make([]string, Size)
	for r := 0; r < Size; r++ {
		var sb strings.Builder
		for c := 0; c < Size; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			v := b[r*Size+c]
			if v == 0 {
				sb.WriteRune('·')
			} else {
				sb.WriteByte(byte('0' + v))
			}
		}
		lines[r] = sb.String()
	}
	return lines
}
