package search

import (
	"math"
	"math/rand"
	"strconv"

	"github.com/Engenharia-Informatica-Lei-UALG/AI-algorithm-viewer-sub000/internal/vistree"
)

// DefaultExploration is the UCB1 exploration constant sqrt(2).
const DefaultExploration = math.Sqrt2

// DefaultRolloutDepth bounds random playouts that never reach a terminal
// state.
const DefaultRolloutDepth = 50

// MCTS is Monte Carlo tree search under a fixed iteration budget. One Step
// runs a full cycle: selection by UCB1, expansion of one untried action, a
// uniform random rollout, and backpropagation of the resulting utility.
// Reaching the budget completes the search regardless of convergence.
type MCTS[S State, A Action] struct {
	base
	game Game[S, A]

	budget       int
	exploration  float64
	rolloutDepth int
	seed         int64

	rng        *rand.Rand
	tree       *mctsNode[S, A]
	iterations int
	bestMove   string
	bestMean   float64
}

type mctsNode[S State, A Action] struct {
	state    S
	pres     *vistree.Node
	parent   *mctsNode[S, A]
	children []*mctsNode[S, A]
	untried  []A
	player   Player
	action   string
	visits   int
	value    float64 // cumulative utility, MaxPlayer perspective
	depth    int
}

// NewMCTS builds Monte Carlo tree search over g. The seed fixes the rollout
// stream so runs replay identically.
func NewMCTS[S State, A Action](g Game[S, A], budget int, exploration float64, rolloutDepth int, seed int64) *MCTS[S, A] {
	if exploration <= 0 {
		exploration = DefaultExploration
	}
	if rolloutDepth <= 0 {
		rolloutDepth = DefaultRolloutDepth
	}
	m := &MCTS[S, A]{game: g, budget: budget, exploration: exploration, rolloutDepth: rolloutDepth, seed: seed}
	m.Reset()
	return m
}

// Reset rebuilds the tree and reseeds the rollout stream.
func (m *MCTS[S, A]) Reset() {
	start := m.game.Initial()
	pres := vistree.New(start.Key(), presName[S, A](m.game, start))
	m.resetBase(pres)
	m.rng = rand.New(rand.NewSource(m.seed))
	m.tree = &mctsNode[S, A]{
		state:   start,
		pres:    pres,
		untried: m.game.Actions(start),
		player:  m.game.ToMove(start),
	}
	m.iterations = 0
	m.bestMove = ""
	m.bestMean = 0
}

// Step runs one iteration, or completes the search once the budget is spent.
func (m *MCTS[S, A]) Step() *vistree.Node {
	if !m.begin() {
		return nil
	}
	if m.iterations >= m.budget {
		m.complete()
		return nil
	}

	// Selection: descend while fully expanded.
	n := m.tree
	for len(n.untried) == 0 && len(n.children) > 0 {
		n = m.selectChild(n)
	}
	// Expansion: materialize one untried action.
	if len(n.untried) > 0 {
		i := m.rng.Intn(len(n.untried))
		a := n.untried[i]
		n.untried = append(n.untried[:i], n.untried[i+1:]...)
		n = m.expand(n, a)
	}
	// Simulation and backpropagation.
	u := m.rollout(n.state)
	for cur := n; cur != nil; cur = cur.parent {
		cur.visits++
		cur.value += u
		cur.pres.Visits = cur.visits
		cur.pres.SetValue(cur.value / float64(cur.visits))
	}

	m.iterations++
	n.pres.IsVisited = true
	m.cursor.Set(n.pres)
	return n.pres
}

// selectChild picks the child maximizing UCB1 from the perspective of the
// player to move at n.
func (m *MCTS[S, A]) selectChild(n *mctsNode[S, A]) *mctsNode[S, A] {
	var best *mctsNode[S, A]
	bestScore := math.Inf(-1)
	for _, c := range n.children {
		if s := m.ucb(n, c); s > bestScore {
			best, bestScore = c, s
		}
	}
	return best
}

// ucb is the UCB1 score of child c at parent n: the mean value signed for
// the moving player plus the exploration bonus.
func (m *MCTS[S, A]) ucb(n, c *mctsNode[S, A]) float64 {
	mean := c.value / float64(c.visits)
	if n.player == MinPlayer {
		mean = -mean
	}
	return mean + m.exploration*math.Sqrt(math.Log(float64(n.visits))/float64(c.visits))
}

func (m *MCTS[S, A]) expand(n *mctsNode[S, A], a A) *mctsNode[S, A] {
	s := m.game.Result(n.state, a)
	id := vistree.ChildID(n.pres.ID, s.Key())
	pres := n.pres.Child(id)
	if pres == nil {
		pres = n.pres.AddChild(vistree.New(id, a.Name()))
	}
	c := &mctsNode[S, A]{
		state:   s,
		pres:    pres,
		parent:  n,
		untried: m.game.Actions(s),
		player:  m.game.ToMove(s),
		action:  a.Name(),
		depth:   n.depth + 1,
	}
	n.children = append(n.children, c)
	m.metrics.NodesExpanded++
	if c.depth > m.metrics.MaxDepth {
		m.metrics.MaxDepth = c.depth
	}
	return c
}

// rollout plays uniformly random moves until a terminal state or the depth
// cutoff, then scores the reached state.
func (m *MCTS[S, A]) rollout(s S) float64 {
	cur := s
	for i := 0; i < m.rolloutDepth; i++ {
		acts := m.game.Actions(cur)
		if len(acts) == 0 {
			break
		}
		cur = m.game.Result(cur, acts[m.rng.Intn(len(acts))])
	}
	return m.game.Utility(cur)
}

// complete resolves the recommendation: the most visited root child.
func (m *MCTS[S, A]) complete() {
	m.status = StatusCompleted
	var best *mctsNode[S, A]
	for _, c := range m.tree.children {
		if best == nil || c.visits > best.visits {
			best = c
		}
	}
	if best != nil {
		m.bestMove = best.action
		m.bestMean = best.value / float64(best.visits)
		m.cursor.Set(best.pres)
	}
}

// Run steps until the status leaves RUNNING.
func (m *MCTS[S, A]) Run() {
	for !m.status.Terminal() {
		m.Step()
	}
}

// Solution returns the recommended move, or nil before completion.
func (m *MCTS[S, A]) Solution() []string {
	if m.bestMove == "" {
		return nil
	}
	return []string{m.bestMove}
}

// SolutionCost returns the mean value of the recommended move.
func (m *MCTS[S, A]) SolutionCost() (float64, bool) {
	if m.status != StatusCompleted || m.bestMove == "" {
		return 0, false
	}
	return m.bestMean, true
}

// Board renders the initial position; rollouts are not board-rendered.
func (m *MCTS[S, A]) Board() []string {
	return boardOf[S, A](m.game, m.tree.state)
}

// Attributes reports driver-facing internals.
func (m *MCTS[S, A]) Attributes() map[string]string {
	a := m.attrs()
	a["Iterations"] = strconv.Itoa(m.iterations) + "/" + strconv.Itoa(m.budget)
	a["Exploration"] = fmtFloat(m.exploration)
	a["Rollout Depth"] = strconv.Itoa(m.rolloutDepth)
	a["Root Visits"] = strconv.Itoa(m.tree.visits)
	return a
}
