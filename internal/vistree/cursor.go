package vistree

// Cursor tracks the single node marked current. Holding a direct reference
// keeps re-marking O(1) instead of a tree sweep.
type Cursor struct {
	node *Node
}

// Set moves the current mark to n. Passing nil just clears the mark.
func (c *Cursor) Set(n *Node) {
	if c.node != nil {
		c.node.IsCurrent = false
	}
	c.node = n
	if n != nil {
		n.IsCurrent = true
	}
}

// Clear removes the current mark.
func (c *Cursor) Clear() { c.Set(nil) }

// Node returns the node currently marked, or nil.
func (c *Cursor) Node() *Node { return c.node }
