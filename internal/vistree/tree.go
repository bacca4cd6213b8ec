// Package vistree holds the render-facing presentation tree that search
// algorithms grow and annotate as they advance.
package vistree

import "encoding/json"

// Node is one presentation node. Algorithms own the annotation flags; the
// structural fields (ID, Name, Children, CostToParent) are stable once set.
type Node struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Value              *float64 `json:"value,omitempty"`
	CostToParent       *float64 `json:"costToParent,omitempty"`
	IsGoal             bool     `json:"isGoal,omitempty"`
	Children           []*Node  `json:"children"`
	BoardState         []string `json:"boardState,omitempty"`
	IsVisited          bool     `json:"isVisited,omitempty"`
	IsCurrent          bool     `json:"isCurrent,omitempty"`
	IsPruned           bool     `json:"isPruned,omitempty"`
	PruningTriggeredBy string   `json:"pruningTriggeredBy,omitempty"`
	Alpha              *float64 `json:"alpha,omitempty"`
	Beta               *float64 `json:"beta,omitempty"`
	Visits             int      `json:"visits,omitempty"`
}

// New creates a node with an empty (non-nil) child list so that JSON output
// always carries a children array.
func New(id, name string) *Node {
	return &Node{ID: id, Name: name, Children: []*Node{}}
}

// ChildID derives a deterministic child id from the parent id and a stable
// key, so repeated expansions of the same edge map to the same node.
func ChildID(parentID, key string) string {
	return parentID + "/" + key
}

// AddChild appends c and returns it.
func (n *Node) AddChild(c *Node) *Node {
	n.Children = append(n.Children, c)
	return c
}

// Child returns the direct child with the given id, or nil.
func (n *Node) Child(id string) *Node {
	for _, c := range n.Children {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// SetValue records the display value (heuristic, minimax value, MCTS mean).
func (n *Node) SetValue(v float64) { n.Value = &v }

// SetCost records the edge cost from the parent.
func (n *Node) SetCost(c float64) { n.CostToParent = &c }

// SetAlpha records the current alpha bound.
func (n *Node) SetAlpha(a float64) { n.Alpha = &a }

// SetBeta records the current beta bound.
func (n *Node) SetBeta(b float64) { n.Beta = &b }

// Clone deep-copies the subtree, including optional values, so the copy can
// be annotated without touching the original.
func (n *Node) Clone() *Node {
	c := &Node{
		ID:                 n.ID,
		Name:               n.Name,
		IsGoal:             n.IsGoal,
		IsVisited:          n.IsVisited,
		IsCurrent:          n.IsCurrent,
		IsPruned:           n.IsPruned,
		PruningTriggeredBy: n.PruningTriggeredBy,
		Visits:             n.Visits,
		Children:           make([]*Node, 0, len(n.Children)),
	}
	if n.Value != nil {
		c.SetValue(*n.Value)
	}
	if n.CostToParent != nil {
		c.SetCost(*n.CostToParent)
	}
	if n.Alpha != nil {
		c.SetAlpha(*n.Alpha)
	}
	if n.Beta != nil {
		c.SetBeta(*n.Beta)
	}
	if n.BoardState != nil {
		c.BoardState = append([]string(nil), n.BoardState...)
	}
	for _, child := range n.Children {
		c.Children = append(c.Children, child.Clone())
	}
	return c
}

// ClearTransient recursively clears per-iteration annotations (visited,
// current, pruning marks, alpha/beta) while keeping structure, names, values,
// costs, goal flags and visit counts.
func (n *Node) ClearTransient() {
	n.IsVisited = false
	n.IsCurrent = false
	n.IsPruned = false
	n.PruningTriggeredBy = ""
	n.Alpha = nil
	n.Beta = nil
	for _, c := range n.Children {
		c.ClearTransient()
	}
}

// Walk visits the subtree in preorder.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// Count returns the number of nodes in the subtree.
func (n *Node) Count() int {
	total := 1
	for _, c := range n.Children {
		total += c.Count()
	}
	return total
}

// Height returns the subtree height in edges; a leaf has height 0.
func (n *Node) Height() int {
	h := 0
	for _, c := range n.Children {
		if ch := c.Height() + 1; ch > h {
			h = ch
		}
	}
	return h
}

// JSON renders the subtree in the import/export wire shape.
func (n *Node) JSON() ([]byte, error) {
	return json.MarshalIndent(n, "", "  ")
}
