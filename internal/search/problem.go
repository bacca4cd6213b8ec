package search

import "github.com/Engenharia-Informatica-Lei-UALG/AI-algorithm-viewer-sub000/internal/vistree"

// State is an immutable snapshot of a search domain. Key must uniquely
// identify the state; it doubles as the deduplication key for explored sets.
type State interface {
	Key() string
}

// Action is a transition label.
type Action interface {
	Name() string
}

// Player identifies which side moves in an adversarial domain.
type Player int

const (
	MaxPlayer Player = iota
	MinPlayer
)

func (p Player) String() string {
	if p == MinPlayer {
		return "MIN"
	}
	return "MAX"
}

// Other returns the opposing player.
func (p Player) Other() Player {
	if p == MaxPlayer {
		return MinPlayer
	}
	return MaxPlayer
}

// Problem describes a search domain. Implementations must be deterministic:
// the same state always yields the same actions in the same order. A state
// with no actions is terminal.
type Problem[S State, A Action] interface {
	Initial() S
	Actions(s S) []A
	Result(s S, a A) S
	IsGoal(s S) bool
	Cost(from S, via A, to S) float64
	Heuristic(s S) float64
}

// Game extends Problem for adversarial domains. Utility is always reported
// from MaxPlayer's perspective; at non-terminal states it acts as a static
// evaluation for depth cutoffs.
type Game[S State, A Action] interface {
	Problem[S, A]
	Utility(s S) float64
	ToMove(s S) Player
}

// BoardRenderer is implemented by problems whose states render as a board.
type BoardRenderer[S State] interface {
	Board(s S) []string
}

// StateNamer lets a problem supply display names for presentation nodes.
// Without it, nodes are named by state key.
type StateNamer[S State] interface {
	StateName(s S) string
}

// TreeSource is implemented by problems defined directly over an authored
// tree. Template must return a copy safe to annotate; the source tree is
// never mutated by a search.
type TreeSource interface {
	Template() *vistree.Node
}
