package search

import (
	"strconv"

	"github.com/Engenharia-Informatica-Lei-UALG/AI-algorithm-viewer-sub000/internal/vistree"
)

// Metrics aggregates the counters every algorithm reports.
type Metrics struct {
	Steps         int
	NodesExpanded int
	MaxDepth      int
}

// base carries the pieces shared by every algorithm: the status machine,
// the presentation tree with its current-node cursor, and the counters.
type base struct {
	status  Status
	metrics Metrics
	root    *vistree.Node
	cursor  vistree.Cursor
}

// Status returns the lifecycle state.
func (b *base) Status() Status { return b.status }

// Metrics returns the shared counters.
func (b *base) Metrics() Metrics { return b.metrics }

// Tree returns the presentation root. Never nil after construction.
func (b *base) Tree() *vistree.Node { return b.root }

// begin gates a step: terminal searches ignore it, idle ones start running.
func (b *base) begin() bool {
	if b.status.Terminal() {
		return false
	}
	b.status = StatusRunning
	b.metrics.Steps++
	return true
}

// visit marks a presentation node as the expanded, current one.
func (b *base) visit(n *vistree.Node, depth int) {
	n.IsVisited = true
	b.cursor.Set(n)
	b.metrics.NodesExpanded++
	if depth > b.metrics.MaxDepth {
		b.metrics.MaxDepth = depth
	}
}

// resetBase restores the shared pieces around a fresh presentation root.
func (b *base) resetBase(root *vistree.Node) {
	b.status = StatusIdle
	b.metrics = Metrics{}
	b.root = root
	b.cursor = vistree.Cursor{}
}

// attrs seeds an attribute map with the shared counters.
func (b *base) attrs() map[string]string {
	return map[string]string{
		"Steps":          strconv.Itoa(b.metrics.Steps),
		"Nodes Expanded": strconv.Itoa(b.metrics.NodesExpanded),
		"Max Depth":      strconv.Itoa(b.metrics.MaxDepth),
	}
}

// fmtFloat renders a float the shortest way that round-trips.
func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// presName resolves the display name for a state.
func presName[S State, A Action](p Problem[S, A], s S) string {
	if n, ok := any(p).(StateNamer[S]); ok {
		return n.StateName(s)
	}
	return s.Key()
}

// boardOf renders a state as board lines when the problem supports it.
func boardOf[S State, A Action](p Problem[S, A], s S) []string {
	if br, ok := any(p).(BoardRenderer[S]); ok {
		return br.Board(s)
	}
	return nil
}

// newPresRoot builds the presentation root for a path search.
func newPresRoot[S State, A Action](p Problem[S, A], root *Node[S, A], withBoard bool) *vistree.Node {
	pres := vistree.New(root.State.Key(), presName(p, root.State))
	pres.SetValue(root.Heuristic)
	pres.IsGoal = p.IsGoal(root.State)
	if withBoard {
		pres.BoardState = boardOf(p, root.State)
	}
	return pres
}

// newPresChild finds or creates the presentation child mirroring n. The id
// is derived from the parent id and the state key, so re-expansions of the
// same edge land on the same node.
func newPresChild[S State, A Action](p Problem[S, A], parent *vistree.Node, n *Node[S, A], withBoard bool) *vistree.Node {
	id := vistree.ChildID(parent.ID, n.State.Key())
	if c := parent.Child(id); c != nil {
		return c
	}
	c := vistree.New(id, presName(p, n.State))
	c.SetValue(n.Heuristic)
	if n.Parent != nil {
		c.SetCost(n.PathCost - n.Parent.PathCost)
	}
	c.IsGoal = p.IsGoal(n.State)
	if withBoard {
		c.BoardState = boardOf(p, n.State)
	}
	return parent.AddChild(c)
}
