package search

import "fmt"

// Violation describes one edge breaking local heuristic consistency.
type Violation struct {
	From   string
	Action string
	To     string
	H      float64
	Cost   float64
	ChildH float64
}

func (v Violation) String() string {
	return fmt.Sprintf("h(%s)=%s > cost(%s)+h(%s)=%s+%s",
		v.From, fmtFloat(v.H), v.Action, v.To, fmtFloat(v.Cost), fmtFloat(v.ChildH))
}

// CheckConsistency breadth-first samples up to maxStates states and reports
// edges where h(n) > cost(n, n') + h(n'). That local condition is what keeps
// A* expansion scores non-decreasing; checking it needs no goal distances,
// unlike the stricter h <= h* comparison.
func CheckConsistency[S State, A Action](p Problem[S, A], maxStates int) []Violation {
	const eps = 1e-9
	var violations []Violation

	start := p.Initial()
	queue := []S{start}
	seen := map[string]bool{start.Key(): true}

	for len(queue) > 0 && len(seen) <= maxStates {
		s := queue[0]
		queue = queue[1:]
		h := p.Heuristic(s)
		for _, a := range p.Actions(s) {
			next := p.Result(s, a)
			cost := p.Cost(s, a, next)
			childH := p.Heuristic(next)
			if h > cost+childH+eps {
				violations = append(violations, Violation{
					From:   s.Key(),
					Action: a.Name(),
					To:     next.Key(),
					H:      h,
					Cost:   cost,
					ChildH: childH,
				})
			}
			if !seen[next.Key()] {
				seen[next.Key()] = true
				queue = append(queue, next)
			}
		}
	}
	return violations
}
