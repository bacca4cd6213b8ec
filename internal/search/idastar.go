package search

import (
	"math"
	"strconv"

	"github.com/Engenharia-Informatica-Lei-UALG/AI-algorithm-viewer-sub000/internal/vistree"
)

// IDAStar is iterative deepening A*: depth-first probes bounded by an
// f-score threshold. The initial threshold is the root heuristic; each
// restart raises it to the smallest score that overflowed the last one, so
// the threshold sequence never decreases.
type IDAStar[S State, A Action] struct {
	base
	problem       Problem[S, A]
	maxIterations int

	stack         []stackItem[S, A]
	threshold     float64
	nextThreshold float64
	iteration     int
	goal          *Node[S, A]
	last          *Node[S, A]
}

// NewIDAStar builds IDA* over p with a cap on threshold restarts.
func NewIDAStar[S State, A Action](p Problem[S, A], maxIterations int) *IDAStar[S, A] {
	s := &IDAStar[S, A]{problem: p, maxIterations: maxIterations}
	s.Reset()
	return s
}

// Reset rebuilds the search; the threshold returns to the root's f-score.
func (s *IDAStar[S, A]) Reset() {
	start := s.problem.Initial()
	root := NewRoot[S, A](start, s.problem.Heuristic(start))
	s.resetBase(newPresRoot(s.problem, root, true))
	s.threshold = root.Score()
	s.nextThreshold = math.Inf(1)
	s.iteration = 1
	s.goal, s.last = nil, nil
	s.stack = s.stack[:0]
	s.stack = append(s.stack, stackItem[S, A]{node: root, pres: s.root})
}

// Step pops one node. Nodes scoring above the threshold are pruned and only
// feed the next threshold; the rest are expanded depth-first. An exhausted
// stack either starts the next iteration (returning nil) or fails when
// nothing overflowed or the restart budget is spent.
func (s *IDAStar[S, A]) Step() *vistree.Node {
	if !s.begin() {
		return nil
	}
	if len(s.stack) == 0 {
		if math.IsInf(s.nextThreshold, 1) || s.iteration+1 > s.maxIterations {
			s.status = StatusFailed
			return nil
		}
		s.iteration++
		s.threshold = s.nextThreshold
		s.nextThreshold = math.Inf(1)
		s.root.ClearTransient()
		s.pushRoot()
		return nil
	}

	it := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	n := it.node
	s.last = n

	if f := n.Score(); f > s.threshold {
		it.pres.IsPruned = true
		it.pres.PruningTriggeredBy = "f " + fmtFloat(f) + " > threshold " + fmtFloat(s.threshold)
		s.cursor.Set(it.pres)
		if f < s.nextThreshold {
			s.nextThreshold = f
		}
		return it.pres
	}

	s.visit(it.pres, n.Depth)
	if s.problem.IsGoal(n.State) {
		s.goal = n
		s.status = StatusCompleted
		return it.pres
	}
	s.pushSuccessors(it)
	return it.pres
}

func (s *IDAStar[S, A]) pushSuccessors(it stackItem[S, A]) {
	n := it.node
	acts := s.problem.Actions(n.State)
	items := make([]stackItem[S, A], 0, len(acts))
	for _, a := range acts {
		succ := s.problem.Result(n.State, a)
		if n.onPath(succ.Key()) {
			continue
		}
		child := n.Child(succ, a, s.problem.Cost(n.State, a, succ), s.problem.Heuristic(succ))
		items = append(items, stackItem[S, A]{node: child, pres: newPresChild(s.problem, it.pres, child, true)})
	}
	for i := len(items) - 1; i >= 0; i-- {
		s.stack = append(s.stack, items[i])
	}
}

func (s *IDAStar[S, A]) pushRoot() {
	start := s.problem.Initial()
	root := NewRoot[S, A](start, s.problem.Heuristic(start))
	s.stack = append(s.stack[:0], stackItem[S, A]{node: root, pres: s.root})
}

// Run steps until the status leaves RUNNING.
func (s *IDAStar[S, A]) Run() {
	for !s.status.Terminal() {
		s.Step()
	}
}

// Solution returns the action names along the found path, or nil.
func (s *IDAStar[S, A]) Solution() []string {
	if s.goal == nil {
		return nil
	}
	return s.goal.ActionNames()
}

// SolutionCost returns the found path cost.
func (s *IDAStar[S, A]) SolutionCost() (float64, bool) {
	if s.goal == nil {
		return 0, false
	}
	return s.goal.PathCost, true
}

// Board renders the most recently considered state.
func (s *IDAStar[S, A]) Board() []string {
	if s.last == nil {
		return boardOf(s.problem, s.problem.Initial())
	}
	return boardOf(s.problem, s.last.State)
}

// Attributes reports driver-facing internals.
func (s *IDAStar[S, A]) Attributes() map[string]string {
	m := s.attrs()
	m["Current f-limit (Threshold)"] = fmtFloat(s.threshold)
	if math.IsInf(s.nextThreshold, 1) {
		m["Next Threshold"] = "-"
	} else {
		m["Next Threshold"] = fmtFloat(s.nextThreshold)
	}
	m["Iteration"] = strconv.Itoa(s.iteration)
	m["Stack Size"] = strconv.Itoa(len(s.stack))
	return m
}
