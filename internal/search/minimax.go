package search

import (
	"math"
	"strconv"

	"github.com/Engenharia-Informatica-Lei-UALG/AI-algorithm-viewer-sub000/internal/vistree"
)

// Minimax runs depth-limited minimax, optionally with alpha-beta pruning, as
// a resumable computation. Recursion is modeled by an explicit frame stack:
// one Step either enters a child subtree, evaluates a leaf and folds its
// value into the parent, or cuts off the remaining siblings. The stack
// survives between calls, so the driver can stop after any unit of work.
type Minimax[S State, A Action] struct {
	base
	game     Game[S, A]
	maxDepth int
	pruning  bool

	stack    []*mmFrame[S, A]
	template bool
	rootVal  float64
	bestMove string
}

type mmFrame[S State, A Action] struct {
	state   S
	pres    *vistree.Node
	depth   int
	player  Player
	actions []A
	next    int
	alpha   float64
	beta    float64
	value   float64
	bestID  string // presentation id of the child owning the current bound
	best    string // action name of the best child so far
	action  string // action that led here
}

// NewMinimax builds plain depth-limited minimax.
func NewMinimax[S State, A Action](g Game[S, A], maxDepth int) *Minimax[S, A] {
	return newMinimax(g, maxDepth, false)
}

// NewAlphaBeta builds minimax with alpha-beta pruning.
func NewAlphaBeta[S State, A Action](g Game[S, A], maxDepth int) *Minimax[S, A] {
	return newMinimax(g, maxDepth, true)
}

func newMinimax[S State, A Action](g Game[S, A], maxDepth int, pruning bool) *Minimax[S, A] {
	m := &Minimax[S, A]{game: g, maxDepth: maxDepth, pruning: pruning}
	m.Reset()
	return m
}

// Reset rebuilds the computation from the initial state. Problems backed by
// an authored tree hand over a clone of it, so the full structure is visible
// from the start and the source is never mutated.
func (m *Minimax[S, A]) Reset() {
	start := m.game.Initial()
	var pres *vistree.Node
	if ts, ok := any(m.game).(TreeSource); ok {
		pres = ts.Template()
		m.template = true
	} else {
		pres = vistree.New(start.Key(), presName[S, A](m.game, start))
	}
	m.resetBase(pres)
	m.rootVal = 0
	m.bestMove = ""
	m.stack = m.stack[:0]
	m.pushFrame(start, nil, "")
}

// Step advances the suspended recursion by one unit of work.
func (m *Minimax[S, A]) Step() *vistree.Node {
	if !m.begin() {
		return nil
	}
	f := m.stack[len(m.stack)-1]

	// Leaf: at the depth limit or out of moves, evaluate statically.
	if f.depth >= m.maxDepth || len(f.actions) == 0 {
		m.finishFrame(m.game.Utility(f.state))
		return f.pres
	}
	// Cutoff: the window closed, remaining siblings cannot matter.
	if m.pruning && f.alpha >= f.beta && f.next < len(f.actions) {
		m.pruneRemaining(f)
		m.finishFrame(f.value)
		return f.pres
	}
	// All children absorbed: the frame's value is final.
	if f.next >= len(f.actions) {
		m.finishFrame(f.value)
		return f.pres
	}
	// Enter the next child subtree.
	a := f.actions[f.next]
	f.next++
	child := m.pushFrame(m.game.Result(f.state, a), f, a.Name())
	m.cursor.Set(child.pres)
	return child.pres
}

// pushFrame suspends into a new frame, inheriting the parent's window.
func (m *Minimax[S, A]) pushFrame(s S, parent *mmFrame[S, A], action string) *mmFrame[S, A] {
	f := &mmFrame[S, A]{
		state:  s,
		depth:  0,
		player: m.game.ToMove(s),
		action: action,
		alpha:  math.Inf(-1),
		beta:   math.Inf(1),
	}
	if parent == nil {
		f.pres = m.root
	} else {
		f.depth = parent.depth + 1
		f.alpha, f.beta = parent.alpha, parent.beta
		f.pres = m.presChild(parent, s, action)
	}
	f.actions = m.game.Actions(s)
	f.value = math.Inf(-1)
	if f.player == MinPlayer {
		f.value = math.Inf(1)
	}
	m.stack = append(m.stack, f)
	return f
}

// presChild finds or creates the presentation child for a move. With an
// authored template the authored node ids are the state keys, so lookups
// land on the pre-built clone.
func (m *Minimax[S, A]) presChild(parent *mmFrame[S, A], s S, action string) *vistree.Node {
	id := s.Key()
	if !m.template {
		id = vistree.ChildID(parent.pres.ID, s.Key())
	}
	if c := parent.pres.Child(id); c != nil {
		return c
	}
	return parent.pres.AddChild(vistree.New(id, action))
}

// finishFrame pops the top frame with its final value and folds it into the
// parent, or completes the search at the root.
func (m *Minimax[S, A]) finishFrame(v float64) {
	f := m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
	f.pres.SetValue(v)
	m.visit(f.pres, f.depth)

	if len(m.stack) == 0 {
		m.rootVal = v
		m.bestMove = f.best
		m.status = StatusCompleted
		return
	}
	m.absorb(m.stack[len(m.stack)-1], f, v)
}

// absorb updates the parent's running best value and, when pruning, its
// alpha or beta bound. The parent is annotated with the id of the descendant
// that currently owns the bound.
func (m *Minimax[S, A]) absorb(p *mmFrame[S, A], child *mmFrame[S, A], v float64) {
	if p.player == MaxPlayer {
		if v > p.value {
			p.value, p.bestID, p.best = v, child.pres.ID, child.action
		}
		if m.pruning && p.value > p.alpha {
			p.alpha = p.value
			m.annotateBounds(p)
		}
	} else {
		if v < p.value {
			p.value, p.bestID, p.best = v, child.pres.ID, child.action
		}
		if m.pruning && p.value < p.beta {
			p.beta = p.value
			m.annotateBounds(p)
		}
	}
	p.pres.SetValue(p.value)
}

// annotateBounds mirrors a frame's finite bounds onto its node. Infinite
// bounds stay off the node; JSON cannot carry them.
func (m *Minimax[S, A]) annotateBounds(p *mmFrame[S, A]) {
	if !math.IsInf(p.alpha, 0) {
		p.pres.SetAlpha(p.alpha)
	}
	if !math.IsInf(p.beta, 0) {
		p.pres.SetBeta(p.beta)
	}
	p.pres.PruningTriggeredBy = p.bestID
}

// pruneRemaining marks every action not yet entered as pruned, synthesizing
// placeholder children for moves that never materialized.
func (m *Minimax[S, A]) pruneRemaining(f *mmFrame[S, A]) {
	for i := f.next; i < len(f.actions); i++ {
		a := f.actions[i]
		c := m.presChild(f, m.game.Result(f.state, a), a.Name())
		c.IsPruned = true
		c.PruningTriggeredBy = f.bestID
	}
	f.next = len(f.actions)
}

// Run steps until the status leaves RUNNING.
func (m *Minimax[S, A]) Run() {
	for !m.status.Terminal() {
		m.Step()
	}
}

// Solution returns the best move found at the root, or nil.
func (m *Minimax[S, A]) Solution() []string {
	if m.status != StatusCompleted || m.bestMove == "" {
		return nil
	}
	return []string{m.bestMove}
}

// SolutionCost returns the root minimax value.
func (m *Minimax[S, A]) SolutionCost() (float64, bool) {
	if m.status != StatusCompleted {
		return 0, false
	}
	return m.rootVal, true
}

// Board renders the position under consideration.
func (m *Minimax[S, A]) Board() []string {
	if len(m.stack) == 0 {
		return boardOf[S, A](m.game, m.game.Initial())
	}
	return boardOf[S, A](m.game, m.stack[len(m.stack)-1].state)
}

// Attributes reports driver-facing internals.
func (m *Minimax[S, A]) Attributes() map[string]string {
	a := m.attrs()
	a["Max Depth Limit"] = strconv.Itoa(m.maxDepth)
	a["Pruning"] = "off"
	if m.pruning {
		a["Pruning"] = "on"
	}
	a["Stack Frames"] = strconv.Itoa(len(m.stack))
	if m.pruning && len(m.stack) > 0 {
		top := m.stack[len(m.stack)-1]
		a["Alpha"] = fmtFloat(top.alpha)
		a["Beta"] = fmtFloat(top.beta)
	}
	return a
}
