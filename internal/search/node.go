package search

// Node links a reached state back through the action that produced it.
// Nodes are immutable once constructed; paths are recovered by following
// Parent pointers.
type Node[S State, A Action] struct {
	State     S
	Parent    *Node[S, A]
	Action    A // meaningless on the root
	PathCost  float64
	Heuristic float64
	Depth     int
}

// NewRoot wraps the initial state.
func NewRoot[S State, A Action](s S, h float64) *Node[S, A] {
	return &Node[S, A]{State: s, Heuristic: h}
}

// Child derives a successor node reached from n via a.
func (n *Node[S, A]) Child(s S, a A, stepCost, h float64) *Node[S, A] {
	return &Node[S, A]{
		State:     s,
		Parent:    n,
		Action:    a,
		PathCost:  n.PathCost + stepCost,
		Heuristic: h,
		Depth:     n.Depth + 1,
	}
}

// Score returns the evaluation f = g + h used by best-first orderings.
func (n *Node[S, A]) Score() float64 {
	return n.PathCost + n.Heuristic
}

// Path returns the chain of nodes from the root to n.
func (n *Node[S, A]) Path() []*Node[S, A] {
	var rev []*Node[S, A]
	for cur := n; cur != nil; cur = cur.Parent {
		rev = append(rev, cur)
	}
	path := make([]*Node[S, A], 0, len(rev))
	for i := len(rev) - 1; i >= 0; i-- {
		path = append(path, rev[i])
	}
	return path
}

// ActionNames returns the names of the actions from the root to n.
func (n *Node[S, A]) ActionNames() []string {
	path := n.Path()
	names := make([]string, 0, len(path))
	for _, p := range path[1:] {
		names = append(names, p.Action.Name())
	}
	return names
}

// onPath reports whether key already occurs on the path ending at n. Used by
// depth-bounded searches to break cycles without an explored set.
func (n *Node[S, A]) onPath(key string) bool {
	for cur := n; cur != nil; cur = cur.Parent {
		if cur.State.Key() == key {
			return true
		}
	}
	return false
}
