// Package search implements resumable search algorithms that advance one
// logical unit of work per Step call: frontier search (BFS, DFS, uniform
// cost, greedy, A*), iterative deepening, IDA*, minimax with optional
// alpha-beta pruning, and Monte Carlo tree search. All of them grow an
// annotated presentation tree a driver can render after every step.
package search

// Status describes the lifecycle of a search.
type Status int

const (
	StatusIdle Status = iota
	StatusRunning
	StatusCompleted
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "IDLE"
	case StatusRunning:
		return "RUNNING"
	case StatusCompleted:
		return "COMPLETED"
	case StatusFailed:
		return "FAILED"
	default:
		return "UNKNOWN"
	}
}

// Terminal reports whether the search has finished, successfully or not.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}
