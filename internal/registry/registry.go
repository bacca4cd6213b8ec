// Package registry provides a global registry for problem factories.
// Problem packages register themselves in init() functions, allowing the
// platform to discover problems and build searchers without hardcoded
// dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/Engenharia-Informatica-Lei-UALG/AI-algorithm-viewer-sub000/internal/search"
	"github.com/Engenharia-Informatica-Lei-UALG/AI-algorithm-viewer-sub000/internal/vistree"
)

// Searcher is the driver-facing contract every algorithm satisfies: advance
// one unit of work per Step, expose the annotated presentation tree, report
// attributes and metrics, and rebuild itself on Reset. Searchers contain
// pure logic with no external dependencies (especially no Bubble Tea); the
// platform handles input, timing and rendering.
type Searcher interface {
	// Status returns the lifecycle state (IDLE, RUNNING, COMPLETED, FAILED).
	Status() search.Status

	// Step performs one unit of work and returns the presentation node the
	// step centered on, or nil when no node is newly relevant.
	Step() *vistree.Node

	// Run steps until the status leaves RUNNING.
	Run()

	// Reset rebuilds the search as if freshly constructed.
	Reset()

	// Tree returns the presentation root. Never nil.
	Tree() *vistree.Node

	// Attributes reports algorithm internals for the side panel.
	Attributes() map[string]string

	// Metrics returns the shared counters.
	Metrics() search.Metrics

	// Solution returns the action names of the result (a path for the
	// single-agent searches, the recommended move for the adversarial ones).
	Solution() []string

	// SolutionCost returns the path cost or root value once available.
	SolutionCost() (float64, bool)

	// Board renders the state most relevant to the last step, when the
	// problem has a board shape.
	Board() []string
}

// HeuristicChecker is implemented by problems that can audit their heuristic
// for local edge consistency. Optional; the solve command probes for it.
type HeuristicChecker interface {
	CheckHeuristic(maxStates int) []search.Violation
}

// Kind classifies a problem's search style.
type Kind int

const (
	// KindPath problems search for a goal path (single agent).
	KindPath Kind = iota
	// KindGame problems search for the best move (two adversarial players).
	KindGame
)

func (k Kind) String() string {
	if k == KindGame {
		return "game"
	}
	return "path"
}

// Problem is the registry-facing description of a search domain: identity
// for CLI commands and run storage, plus searcher construction.
type Problem interface {
	// ID returns a unique identifier (e.g., "puzzle", "tictactoe").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Kind reports whether the problem is a path search or a game.
	Kind() Kind

	// Algorithms lists the algorithms this problem supports, in menu order.
	Algorithms() []AlgorithmInfo

	// NewSearcher builds a searcher for one of the supported algorithms.
	NewSearcher(algorithm string, opts search.Options) (Searcher, error)
}

// AlgorithmInfo identifies one algorithm a problem supports.
type AlgorithmInfo struct {
	ID    string
	Title string
}

// Canonical algorithm catalog; problems pick the subset they support.
var (
	AlgoBFS       = AlgorithmInfo{ID: "bfs", Title: "Breadth-First Search"}
	AlgoDFS       = AlgorithmInfo{ID: "dfs", Title: "Depth-First Search"}
	AlgoUCS       = AlgorithmInfo{ID: "ucs", Title: "Uniform Cost Search"}
	AlgoGreedy    = AlgorithmInfo{ID: "greedy", Title: "Greedy Best-First"}
	AlgoAStar     = AlgorithmInfo{ID: "astar", Title: "A* Search"}
	AlgoIDS       = AlgorithmInfo{ID: "ids", Title: "Iterative Deepening"}
	AlgoIDAStar   = AlgorithmInfo{ID: "idastar", Title: "IDA* Search"}
	AlgoMinimax   = AlgorithmInfo{ID: "minimax", Title: "Minimax"}
	AlgoAlphaBeta = AlgorithmInfo{ID: "alphabeta", Title: "Minimax + Alpha-Beta"}
	AlgoMCTS      = AlgorithmInfo{ID: "mcts", Title: "Monte Carlo Tree Search"}
)

// PathAlgorithms returns the single-agent algorithm set, in menu order.
func PathAlgorithms() []AlgorithmInfo {
	return []AlgorithmInfo{AlgoBFS, AlgoDFS, AlgoUCS, AlgoGreedy, AlgoAStar, AlgoIDS, AlgoIDAStar}
}

// GameAlgorithms returns the adversarial algorithm set, in menu order.
func GameAlgorithms() []AlgorithmInfo {
	return []AlgorithmInfo{AlgoMinimax, AlgoAlphaBeta, AlgoMCTS}
}

// NewPathSearcher builds one of the single-agent searches over p.
func NewPathSearcher[S search.State, A search.Action](p search.Problem[S, A], algorithm string, o search.Options) (Searcher, error) {
	switch algorithm {
	case AlgoBFS.ID:
		return search.NewBFS[S, A](p), nil
	case AlgoDFS.ID:
		return search.NewDFS[S, A](p), nil
	case AlgoUCS.ID:
		return search.NewUCS[S, A](p), nil
	case AlgoGreedy.ID:
		return search.NewGreedy[S, A](p), nil
	case AlgoAStar.ID:
		return search.NewAStar[S, A](p), nil
	case AlgoIDS.ID:
		return search.NewDeepening[S, A](p, o.InitialDepth, o.MaxAllowedDepth), nil
	case AlgoIDAStar.ID:
		return search.NewIDAStar[S, A](p, o.MaxIterations), nil
	}
	return nil, fmt.Errorf("registry: unsupported path algorithm %q", algorithm)
}

// NewGameSearcher builds one of the adversarial searches over g.
func NewGameSearcher[S search.State, A search.Action](g search.Game[S, A], algorithm string, o search.Options) (Searcher, error) {
	switch algorithm {
	case AlgoMinimax.ID:
		return search.NewMinimax[S, A](g, o.MaxDepth), nil
	case AlgoAlphaBeta.ID:
		return search.NewAlphaBeta[S, A](g, o.MaxDepth), nil
	case AlgoMCTS.ID:
		return search.NewMCTS[S, A](g, o.Iterations, o.Exploration, o.RolloutDepth, o.Seed), nil
	}
	return nil, fmt.Errorf("registry: unsupported game algorithm %q", algorithm)
}

// ProblemInfo contains metadata about a registered problem.
type ProblemInfo struct {
	ID    string
	Title string
	Kind  Kind
}

// Factory is a function that creates a new instance of a problem.
type Factory func() Problem

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]ProblemInfo)
	mu        sync.RWMutex
)

// Register adds a problem factory to the registry.
// Typically called from a problem's init() function.
// Panics if a problem with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: problem %q already registered", id))
	}

	factories[id] = f

	// Get metadata by creating a temporary instance
	p := f()
	infos[id] = ProblemInfo{ID: id, Title: p.Title(), Kind: p.Kind()}
}

// List returns information about all registered problems, sorted by ID.
func List() []ProblemInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ProblemInfo, 0, len(factories))
	for id := range factories {
		result = append(result, infos[id])
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new problem by its ID.
// Returns an error if the problem ID is not registered.
func Create(id string) (Problem, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown problem %q", id)
	}

	return f(), nil
}

// Exists checks if a problem with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
