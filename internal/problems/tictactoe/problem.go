// Package tictactoe implements the adversarial 3x3 grid game. X maximizes,
// O minimizes; X opens.
package tictactoe

import (
	"github.com/Engenharia-Informatica-Lei-UALG/AI-algorithm-viewer-sub000/internal/registry"
	"github.com/Engenharia-Informatica-Lei-UALG/AI-algorithm-viewer-sub000/internal/search"
)

// Problem adapts tic-tac-toe to the game contract.
type Problem struct{}

// New creates the game starting from the empty grid.
func New() *Problem { return &Problem{} }

func init() {
	registry.Register("tictactoe", func() registry.Problem {
		return New()
	})
}

// ID returns the problem identifier.
func (p *Problem) ID() string { return "tictactoe" }

// Title returns the display name.
func (p *Problem) Title() string { return "Tic-Tac-Toe" }

// Kind reports that this is a two-player game.
func (p *Problem) Kind() registry.Kind { return registry.KindGame }

// Algorithms lists the supported algorithms.
func (p *Problem) Algorithms() []registry.AlgorithmInfo {
	return registry.GameAlgorithms()
}

// NewSearcher builds a searcher for one of the supported algorithms.
func (p *Problem) NewSearcher(algorithm string, opts search.Options) (registry.Searcher, error) {
	return registry.NewGameSearcher[Position, Move](p, algorithm, opts)
}

// Initial returns the empty grid.
func (p *Problem) Initial() Position { return Start() }

// Actions returns the empty cells in board order; none once the game ends.
func (p *Problem) Actions(pos Position) []Move {
	if Terminal(pos) {
		return nil
	}
	moves := make([]Move, 0, 9)
	for i, c := range pos {
		if c == Empty {
			moves = append(moves, Move(i))
		}
	}
	return moves
}

// Result places the next mover's mark.
func (p *Problem) Result(pos Position, m Move) Position {
	pos[m] = Mover(pos)
	return pos
}

// IsGoal highlights positions X has won.
func (p *Problem) IsGoal(pos Position) bool { return Winner(pos) == X }

// Cost is 1 per move; unused by the adversarial algorithms.
func (p *Problem) Cost(Position, Move, Position) float64 { return 1 }

// Heuristic is unused by the adversarial algorithms.
func (p *Problem) Heuristic(Position) float64 { return 0 }

// Utility scores from the maximizing side (X).
func (p *Problem) Utility(pos Position) float64 { return Evaluate(pos) }

// ToMove maps X to MAX and O to MIN.
func (p *Problem) ToMove(pos Position) search.Player {
	if Mover(pos) == O {
		return search.MinPlayer
	}
	return search.MaxPlayer
}

// Board renders pos for the board panel.
func (p *Problem) Board(pos Position) []string { return Render(pos) }
