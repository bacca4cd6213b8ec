package search

// Shared test domains: a weighted digraph for the path searches and a fixed
// two-player tree for the adversarial ones.

type gstate string

func (s gstate) Key() string { return string(s) }

type gaction string

func (a gaction) Name() string { return string(a) }

// graphProblem is a search domain over an explicit weighted digraph. Actions
// are named after the target state, so Result is a plain cast.
type graphProblem struct {
	start gstate
	goals map[string]bool
	edges map[string][]gedge
	h     map[string]float64
}

type gedge struct {
	to   string
	cost float64
}

func (p *graphProblem) Initial() gstate { return p.start }

func (p *graphProblem) Actions(s gstate) []gaction {
	var acts []gaction
	for _, e := range p.edges[string(s)] {
		acts = append(acts, gaction(e.to))
	}
	return acts
}

func (p *graphProblem) Result(s gstate, a gaction) gstate { return gstate(a) }

func (p *graphProblem) IsGoal(s gstate) bool { return p.goals[string(s)] }

func (p *graphProblem) Cost(from gstate, via gaction, to gstate) float64 {
	for _, e := range p.edges[string(from)] {
		if e.to == string(to) {
			return e.cost
		}
	}
	return 1
}

func (p *graphProblem) Heuristic(s gstate) float64 { return p.h[string(s)] }

type tstate string

func (s tstate) Key() string { return string(s) }

type taction string

func (a taction) Name() string { return string(a) }

// treeGame is a fixed two-player game tree keyed by node id. Node depth is
// the id length minus one; MAX moves at even depths.
type treeGame struct {
	root     string
	children map[string][]string
	utility  map[string]float64
}

func (g *treeGame) Initial() tstate { return tstate(g.root) }

func (g *treeGame) Actions(s tstate) []taction {
	var acts []taction
	for _, c := range g.children[string(s)] {
		acts = append(acts, taction(c))
	}
	return acts
}

func (g *treeGame) Result(s tstate, a taction) tstate { return tstate(a) }

func (g *treeGame) IsGoal(s tstate) bool { return false }

func (g *treeGame) Cost(from tstate, via taction, to tstate) float64 { return 1 }

func (g *treeGame) Heuristic(s tstate) float64 { return 0 }

func (g *treeGame) Utility(s tstate) float64 { return g.utility[string(s)] }

func (g *treeGame) ToMove(s tstate) Player {
	if (len(s)-1)%2 == 0 {
		return MaxPlayer
	}
	return MinPlayer
}

// pruningTree is the classic three-branch example: alpha-beta prunes exactly
// the last two leaves of the middle branch and the root value is 3.
func pruningTree() *treeGame {
	return &treeGame{
		root: "A",
		children: map[string][]string{
			"A":  {"AB", "AC", "AD"},
			"AB": {"ABE", "ABF", "ABG"},
			"AC": {"ACH", "ACI", "ACJ"},
			"AD": {"ADK", "ADL", "ADM"},
		},
		utility: map[string]float64{
			"ABE": 3, "ABF": 12, "ABG": 8,
			"ACH": 2, "ACI": 4, "ACJ": 6,
			"ADK": 14, "ADL": 5, "ADM": 2,
			// Static evaluations for depth-limited runs
			"AB": 7, "AC": 1, "AD": 4,
		},
	}
}

// diamondGraph has a cheap detour to C through B, so cost-ordered searches
// must replace the direct A->C frontier entry.
func diamondGraph() *graphProblem {
	return &graphProblem{
		start: "A",
		goals: map[string]bool{"G": true},
		edges: map[string][]gedge{
			"A": {{"B", 1}, {"C", 10}},
			"B": {{"C", 1}},
			"C": {{"G", 3}},
		},
	}
}
