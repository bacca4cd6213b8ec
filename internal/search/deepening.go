package search

import (
	"strconv"

	"github.com/Engenharia-Informatica-Lei-UALG/AI-algorithm-viewer-sub000/internal/vistree"
)

// Deepening is iterative deepening search: depth-limited DFS restarted with
// a growing limit. The presentation tree persists across iterations, so
// structure discovered earlier stays on screen while annotations restart.
type Deepening[S State, A Action] struct {
	base
	problem    Problem[S, A]
	initial    int
	maxAllowed int

	stack []stackItem[S, A]
	limit int
	goal  *Node[S, A]
	last  *Node[S, A]
}

type stackItem[S State, A Action] struct {
	node *Node[S, A]
	pres *vistree.Node
}

// NewDeepening builds iterative deepening over p. The depth limit starts at
// initial and grows by one per iteration; exceeding maxAllowed fails the
// search.
func NewDeepening[S State, A Action](p Problem[S, A], initial, maxAllowed int) *Deepening[S, A] {
	d := &Deepening[S, A]{problem: p, initial: initial, maxAllowed: maxAllowed}
	d.Reset()
	return d
}

// Reset rebuilds the search from the initial state at the initial limit.
func (d *Deepening[S, A]) Reset() {
	start := d.problem.Initial()
	root := NewRoot[S, A](start, d.problem.Heuristic(start))
	d.resetBase(newPresRoot(d.problem, root, true))
	d.limit = d.initial
	d.goal, d.last = nil, nil
	d.stack = d.stack[:0]
	d.stack = append(d.stack, stackItem[S, A]{node: root, pres: d.root})
}

// Step pops one node from the depth-limited stack. At an iteration boundary
// it grows the limit, clears per-iteration annotations and returns nil.
func (d *Deepening[S, A]) Step() *vistree.Node {
	if !d.begin() {
		return nil
	}
	if len(d.stack) == 0 {
		if d.limit+1 > d.maxAllowed {
			d.status = StatusFailed
			return nil
		}
		d.limit++
		d.root.ClearTransient()
		d.pushRoot()
		return nil
	}

	it := d.stack[len(d.stack)-1]
	d.stack = d.stack[:len(d.stack)-1]
	n := it.node
	d.last = n
	d.visit(it.pres, n.Depth)

	if d.problem.IsGoal(n.State) {
		d.goal = n
		d.status = StatusCompleted
		return it.pres
	}
	if n.Depth < d.limit {
		d.pushSuccessors(it)
	}
	return it.pres
}

// pushSuccessors generates children in action order and stacks them so the
// first action is explored first.
func (d *Deepening[S, A]) pushSuccessors(it stackItem[S, A]) {
	n := it.node
	acts := d.problem.Actions(n.State)
	items := make([]stackItem[S, A], 0, len(acts))
	for _, a := range acts {
		s := d.problem.Result(n.State, a)
		if n.onPath(s.Key()) {
			continue // cycle on the current path
		}
		child := n.Child(s, a, d.problem.Cost(n.State, a, s), d.problem.Heuristic(s))
		items = append(items, stackItem[S, A]{node: child, pres: newPresChild(d.problem, it.pres, child, true)})
	}
	for i := len(items) - 1; i >= 0; i-- {
		d.stack = append(d.stack, items[i])
	}
}

func (d *Deepening[S, A]) pushRoot() {
	start := d.problem.Initial()
	root := NewRoot[S, A](start, d.problem.Heuristic(start))
	d.stack = append(d.stack[:0], stackItem[S, A]{node: root, pres: d.root})
}

// Run steps until the status leaves RUNNING.
func (d *Deepening[S, A]) Run() {
	for !d.status.Terminal() {
		d.Step()
	}
}

// Solution returns the action names along the found path, or nil.
func (d *Deepening[S, A]) Solution() []string {
	if d.goal == nil {
		return nil
	}
	return d.goal.ActionNames()
}

// SolutionCost returns the found path cost.
func (d *Deepening[S, A]) SolutionCost() (float64, bool) {
	if d.goal == nil {
		return 0, false
	}
	return d.goal.PathCost, true
}

// Board renders the most recently expanded state.
func (d *Deepening[S, A]) Board() []string {
	if d.last == nil {
		return boardOf(d.problem, d.problem.Initial())
	}
	return boardOf(d.problem, d.last.State)
}

// Attributes reports driver-facing internals.
func (d *Deepening[S, A]) Attributes() map[string]string {
	m := d.attrs()
	m["Current Depth Limit"] = strconv.Itoa(d.limit)
	m["Max Allowed Depth"] = strconv.Itoa(d.maxAllowed)
	m["Stack Size"] = strconv.Itoa(len(d.stack))
	return m
}
