package authored

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Node is one vertex of an authored tree. A *Node doubles as the search
// state; the authored id is the state key.
type Node struct {
	ID       string
	Name     string
	Value    float64
	HasValue bool
	Cost     float64 // edge cost from the parent; 1 unless authored
	IsGoal   bool
	Parent   *Node
	Depth    int
	Children []*Node
}

// Key returns the authored id.
func (n *Node) Key() string { return n.ID }

// Choice is the action of descending to one child.
type Choice struct {
	To *Node
}

// Name returns the target's display name.
func (c Choice) Name() string { return c.To.Name }

// rawNode is the import shape shared by the JSON and YAML loaders. Children
// is a pointer so an absent field is distinguishable from an empty list.
type rawNode struct {
	ID           string     `json:"id" yaml:"id"`
	Name         string     `json:"name" yaml:"name"`
	Value        *float64   `json:"value" yaml:"value"`
	CostToParent *float64   `json:"costToParent" yaml:"costToParent"`
	IsGoal       bool       `json:"isGoal" yaml:"isGoal"`
	Children     *[]rawNode `json:"children" yaml:"children"`
}

// Load parses an authored tree document. The format hint is a file
// extension; anything but "json" is parsed as YAML, which accepts JSON
// documents as well.
func Load(data []byte, format string) (*Node, error) {
	var raw rawNode
	if strings.TrimPrefix(strings.ToLower(format), ".") == "json" {
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("authored: parse json: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("authored: parse yaml: %w", err)
		}
	}

	seen := make(map[string]bool)
	return build(raw, nil, 0, seen)
}

// LoadFile reads and parses an authored tree file.
func LoadFile(path string) (*Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("authored: read tree: %w", err)
	}
	return Load(data, filepath.Ext(path))
}

// build validates one raw node and its subtree.
func build(raw rawNode, parent *Node, depth int, seen map[string]bool) (*Node, error) {
	if raw.ID == "" {
		return nil, fmt.Errorf("authored: node with empty id (under %q)", parentID(parent))
	}
	if seen[raw.ID] {
		return nil, fmt.Errorf("authored: duplicate node id %q", raw.ID)
	}
	seen[raw.ID] = true
	if raw.Children == nil {
		return nil, fmt.Errorf("authored: node %q missing children field (leaves use [])", raw.ID)
	}

	n := &Node{
		ID:     raw.ID,
		Name:   raw.Name,
		Cost:   1,
		IsGoal: raw.IsGoal,
		Parent: parent,
		Depth:  depth,
	}
	if n.Name == "" {
		n.Name = raw.ID
	}
	if raw.Value != nil {
		n.Value = *raw.Value
		n.HasValue = true
	}
	if raw.CostToParent != nil {
		n.Cost = *raw.CostToParent
	}

	for _, rc := range *raw.Children {
		c, err := build(rc, n, depth+1, seen)
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, c)
	}
	return n, nil
}

func parentID(n *Node) string {
	if n == nil {
		return "root"
	}
	return n.ID
}

// GoalDistances computes the true cost from every node to its nearest goal,
// keyed by node id. Goals are 0; nodes with no goal below them are +Inf.
func GoalDistances(root *Node) map[string]float64 {
	out := make(map[string]float64)
	goalDistance(root, out)
	return out
}

func goalDistance(n *Node, out map[string]float64) float64 {
	best := math.Inf(1)
	for _, c := range n.Children {
		if d := c.Cost + goalDistance(c, out); d < best {
			best = d
		}
	}
	if n.IsGoal {
		best = 0
	}
	out[n.ID] = best
	return best
}

// StrictViolation describes a node whose authored value overestimates the
// true goal distance.
type StrictViolation struct {
	Node string
	H    float64
	Best float64
}

func (v StrictViolation) String() string {
	return fmt.Sprintf("h(%s)=%s > h*(%s)=%s",
		v.Node, strconv.FormatFloat(v.H, 'g', -1, 64),
		v.Node, strconv.FormatFloat(v.Best, 'g', -1, 64))
}

// StrictViolations reports authored values above the true goal distance.
// This is the h <= h* check; it is stricter than local edge consistency and
// the two disagree on some trees, so callers report them separately.
func StrictViolations(root *Node) []StrictViolation {
	const eps = 1e-9
	dist := GoalDistances(root)

	var out []StrictViolation
	var walk func(n *Node)
	walk = func(n *Node) {
		best := dist[n.ID]
		if n.HasValue && !math.IsInf(best, 1) && n.Value > best+eps {
			out = append(out, StrictViolation{Node: n.ID, H: n.Value, Best: best})
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(root)
	return out
}
