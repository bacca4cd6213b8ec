package search

import (
	"container/heap"
	"strconv"

	"github.com/Engenharia-Informatica-Lei-UALG/AI-algorithm-viewer-sub000/internal/vistree"
)

// Compare orders two candidate nodes; a negative result means a should leave
// the frontier before b. A nil Compare keeps plain insertion (FIFO) order.
type Compare[S State, A Action] func(a, b *Node[S, A]) int

// Frontier is the generic best-first search. The comparator decides the
// strategy: nil gives BFS, depth-descending gives DFS, path cost gives
// uniform cost, heuristic-only gives greedy, g+h gives A*.
type Frontier[S State, A Action] struct {
	base
	problem  Problem[S, A]
	strategy string
	cmp      Compare[S, A]

	queue    *frontierQueue[S, A]
	byKey    map[string]*frontierEntry[S, A]
	explored map[string]bool
	seq      int

	last *Node[S, A]
	goal *Node[S, A]
}

// NewFrontier builds a frontier search over p with an explicit comparator.
func NewFrontier[S State, A Action](p Problem[S, A], strategy string, cmp Compare[S, A]) *Frontier[S, A] {
	f := &Frontier[S, A]{problem: p, strategy: strategy, cmp: cmp}
	f.Reset()
	return f
}

// NewBFS expands shallowest-first (generation order).
func NewBFS[S State, A Action](p Problem[S, A]) *Frontier[S, A] {
	return NewFrontier(p, "Breadth-First", nil)
}

// NewDFS expands the deepest frontier node first.
func NewDFS[S State, A Action](p Problem[S, A]) *Frontier[S, A] {
	return NewFrontier(p, "Depth-First", func(a, b *Node[S, A]) int {
		return b.Depth - a.Depth
	})
}

// NewUCS expands the cheapest accumulated path first.
func NewUCS[S State, A Action](p Problem[S, A]) *Frontier[S, A] {
	return NewFrontier(p, "Uniform Cost", func(a, b *Node[S, A]) int {
		return cmpFloat(a.PathCost, b.PathCost)
	})
}

// NewGreedy expands the smallest heuristic first, ignoring path cost.
func NewGreedy[S State, A Action](p Problem[S, A]) *Frontier[S, A] {
	return NewFrontier(p, "Greedy Best-First", func(a, b *Node[S, A]) int {
		return cmpFloat(a.Heuristic, b.Heuristic)
	})
}

// NewAStar expands the smallest f = g + h first.
func NewAStar[S State, A Action](p Problem[S, A]) *Frontier[S, A] {
	return NewFrontier(p, "A*", func(a, b *Node[S, A]) int {
		return cmpFloat(a.Score(), b.Score())
	})
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Reset rebuilds the search from the initial state.
func (f *Frontier[S, A]) Reset() {
	start := f.problem.Initial()
	root := NewRoot[S, A](start, f.problem.Heuristic(start))
	f.resetBase(newPresRoot(f.problem, root, true))
	f.queue = &frontierQueue[S, A]{cmp: f.cmp}
	f.byKey = make(map[string]*frontierEntry[S, A])
	f.explored = make(map[string]bool)
	f.seq = 0
	f.last, f.goal = nil, nil
	f.push(root, f.root)
}

// Step expands one frontier node and returns its presentation entry, or nil
// once the search is over.
func (f *Frontier[S, A]) Step() *vistree.Node {
	if !f.begin() {
		return nil
	}
	if f.queue.Len() == 0 {
		// Exhausted without reaching a goal.
		f.status = StatusFailed
		return nil
	}

	e := heap.Pop(f.queue).(*frontierEntry[S, A])
	key := e.node.State.Key()
	delete(f.byKey, key)
	f.explored[key] = true
	f.last = e.node
	f.visit(e.pres, e.node.Depth)

	if f.problem.IsGoal(e.node.State) {
		f.goal = e.node
		f.status = StatusCompleted
		return e.pres
	}

	for _, a := range f.problem.Actions(e.node.State) {
		s := f.problem.Result(e.node.State, a)
		k := s.Key()
		if f.explored[k] {
			continue
		}
		child := e.node.Child(s, a, f.problem.Cost(e.node.State, a, s), f.problem.Heuristic(s))
		if old, ok := f.byKey[k]; ok {
			// Replace only when the comparator ranks the new path strictly
			// better. The superseded presentation node stays as a leaf; the
			// tree records every generated candidate.
			if f.cmp == nil || f.cmp(child, old.node) >= 0 {
				continue
			}
			old.node = child
			old.pres = newPresChild(f.problem, e.pres, child, true)
			heap.Fix(f.queue, old.index)
			continue
		}
		f.push(child, newPresChild(f.problem, e.pres, child, true))
	}
	return e.pres
}

// Run steps until the status leaves RUNNING.
func (f *Frontier[S, A]) Run() {
	for !f.status.Terminal() {
		f.Step()
	}
}

// Solution returns the action names along the found path, or nil.
func (f *Frontier[S, A]) Solution() []string {
	if f.goal == nil {
		return nil
	}
	return f.goal.ActionNames()
}

// SolutionCost returns the found path cost.
func (f *Frontier[S, A]) SolutionCost() (float64, bool) {
	if f.goal == nil {
		return 0, false
	}
	return f.goal.PathCost, true
}

// Board renders the most recently expanded state.
func (f *Frontier[S, A]) Board() []string {
	if f.last == nil {
		return boardOf(f.problem, f.problem.Initial())
	}
	return boardOf(f.problem, f.last.State)
}

// Attributes reports driver-facing internals.
func (f *Frontier[S, A]) Attributes() map[string]string {
	m := f.attrs()
	m["Strategy"] = f.strategy
	m["Frontier Size"] = strconv.Itoa(f.queue.Len())
	m["Explored States"] = strconv.Itoa(len(f.explored))
	return m
}

func (f *Frontier[S, A]) push(n *Node[S, A], pres *vistree.Node) {
	e := &frontierEntry[S, A]{node: n, pres: pres, seq: f.seq}
	f.seq++
	heap.Push(f.queue, e)
	f.byKey[n.State.Key()] = e
}

type frontierEntry[S State, A Action] struct {
	node  *Node[S, A]
	pres  *vistree.Node
	seq   int
	index int
}

// frontierQueue orders entries by the comparator, breaking ties by insertion
// order so equal-rank nodes come out oldest-first.
type frontierQueue[S State, A Action] struct {
	entries []*frontierEntry[S, A]
	cmp     Compare[S, A]
}

func (q *frontierQueue[S, A]) Len() int { return len(q.entries) }

func (q *frontierQueue[S, A]) Less(i, j int) bool {
	a, b := q.entries[i], q.entries[j]
	if q.cmp != nil {
		if c := q.cmp(a.node, b.node); c != 0 {
			return c < 0
		}
	}
	return a.seq < b.seq
}

func (q *frontierQueue[S, A]) Swap(i, j int) {
	q.entries[i], q.entries[j] = q.entries[j], q.entries[i]
	q.entries[i].index = i
	q.entries[j].index = j
}

func (q *frontierQueue[S, A]) Push(x any) {
	e := x.(*frontierEntry[S, A])
	e.index = len(q.entries)
	q.entries = append(q.entries, e)
}

func (q *frontierQueue[S, A]) Pop() any {
	old := q.entries
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	q.entries = old[:n-1]
	e.index = -1
	return e
}
