// Package authored implements the user-authored generic tree domain: search
// runs directly over a tree loaded from JSON or YAML, with node values
// serving as heuristic estimates or leaf utilities.
package authored

import (
	_ "embed"
	"fmt"

	"github.com/Engenharia-Informatica-Lei-UALG/AI-algorithm-viewer-sub000/internal/registry"
	"github.com/Engenharia-Informatica-Lei-UALG/AI-algorithm-viewer-sub000/internal/search"
	"github.com/Engenharia-Informatica-Lei-UALG/AI-algorithm-viewer-sub000/internal/vistree"
)

//go:embed samples/pathfinding.yaml
var samplePathfinding []byte

//go:embed samples/minimax.yaml
var sampleMinimax []byte

// treePath stores the custom tree file set via CLI; it replaces the embedded
// sample for problems constructed afterwards.
var treePath string

// SetTreePath sets a user tree file to load instead of the built-in sample.
func SetTreePath(path string) {
	treePath = path
}

// Problem adapts an authored tree to the search contract. The path variant
// treats node values as heuristics and isGoal leaves as targets; the game
// variant alternates MAX/MIN by depth and reads leaf values as utilities.
type Problem struct {
	id    string
	title string
	kind  registry.Kind
	root  *Node
}

// NewPath creates the authored problem wired for path search.
func NewPath() *Problem {
	return newProblem("tree", "Authored Tree (Path)", registry.KindPath, samplePathfinding)
}

// NewGame creates the authored problem wired for adversarial search.
func NewGame() *Problem {
	return newProblem("tree_game", "Authored Tree (Game)", registry.KindGame, sampleMinimax)
}

func newProblem(id, title string, kind registry.Kind, sample []byte) *Problem {
	root := mustLoad(sample)
	if treePath != "" {
		// The CLI validates user files up front; a failure here falls back
		// to the sample.
		if r, err := LoadFile(treePath); err == nil {
			root = r
		}
	}
	return &Problem{id: id, title: title, kind: kind, root: root}
}

func mustLoad(data []byte) *Node {
	root, err := Load(data, "yaml")
	if err != nil {
		panic(fmt.Sprintf("authored: embedded sample invalid: %v", err))
	}
	return root
}

func init() {
	registry.Register("tree", func() registry.Problem {
		return NewPath()
	})
	registry.Register("tree_game", func() registry.Problem {
		return NewGame()
	})
}

// ID returns the problem identifier.
func (p *Problem) ID() string { return p.id }

// Title returns the display name.
func (p *Problem) Title() string { return p.title }

// Kind reports the variant's search style.
func (p *Problem) Kind() registry.Kind { return p.kind }

// Algorithms lists the supported algorithms for the variant.
func (p *Problem) Algorithms() []registry.AlgorithmInfo {
	if p.kind == registry.KindGame {
		return registry.GameAlgorithms()
	}
	return registry.PathAlgorithms()
}

// NewSearcher builds a searcher for one of the supported algorithms.
func (p *Problem) NewSearcher(algorithm string, opts search.Options) (registry.Searcher, error) {
	if p.kind == registry.KindGame {
		return registry.NewGameSearcher[*Node, Choice](p, algorithm, opts)
	}
	return registry.NewPathSearcher[*Node, Choice](p, algorithm, opts)
}

// Root returns the loaded tree.
func (p *Problem) Root() *Node { return p.root }

// Initial returns the tree root.
func (p *Problem) Initial() *Node { return p.root }

// Actions descends to the node's children in authored order.
func (p *Problem) Actions(n *Node) []Choice {
	choices := make([]Choice, 0, len(n.Children))
	for _, c := range n.Children {
		choices = append(choices, Choice{To: c})
	}
	return choices
}

// Result follows the chosen edge.
func (p *Problem) Result(_ *Node, c Choice) *Node { return c.To }

// IsGoal reports the authored goal flag.
func (p *Problem) IsGoal(n *Node) bool { return n.IsGoal }

// Cost is the authored edge cost of the target, 1 by default.
func (p *Problem) Cost(_ *Node, _ Choice, to *Node) float64 { return to.Cost }

// Heuristic reads the authored node value; 0 when absent.
func (p *Problem) Heuristic(n *Node) float64 { return n.Value }

// Utility reads the authored node value; 0 when absent.
func (p *Problem) Utility(n *Node) float64 { return n.Value }

// ToMove alternates by depth; the root is always the maximizer.
func (p *Problem) ToMove(n *Node) search.Player {
	if n.Depth%2 == 1 {
		return search.MinPlayer
	}
	return search.MaxPlayer
}

// StateName names presentation nodes by the authored name.
func (p *Problem) StateName(n *Node) string { return n.Name }

// CheckHeuristic walks the tree and reports edges where the authored values
// break local consistency.
func (p *Problem) CheckHeuristic(maxStates int) []search.Violation {
	return search.CheckConsistency[*Node, Choice](p, maxStates)
}

// Template clones the authored structure so adversarial searches show the
// full tree from the first step. The source tree is never annotated.
func (p *Problem) Template() *vistree.Node {
	return template(p.root)
}

func template(n *Node) *vistree.Node {
	v := vistree.New(n.ID, n.Name)
	if n.HasValue {
		v.SetValue(n.Value)
	}
	if n.Parent != nil {
		v.SetCost(n.Cost)
	}
	v.IsGoal = n.IsGoal
	for _, c := range n.Children {
		v.AddChild(template(c))
	}
	return v
}
