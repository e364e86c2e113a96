package search

import "math/rand"

type Status int

const (
	Running Status = iota
	Converged // Best state reached the problem's maximum score
	Exhausted // Iteration budget spent without reaching the maximum score
)

func (status Status) String() string {
	switch status {
	case Running:
		return "running"
	case Converged:
		return "converged"
	case Exhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Problem describes a discrete search space to be explored by an Annealer.
// Score is the objective to maximize; Propose generates a neighbor of the
// given state without mutating it; Snapshot deep-copies a state so that the
// best solution can be kept independent from the current one.
type Problem[S any] struct {
	Initial  S
	MaxScore int
	Score    func(state S) int
	Propose  func(state S, rng *rand.Rand) S
	Snapshot func(state S) S
	Hook     func(iteration, bestScore int, temperature float64) // Optional per-iteration callback
}

type Outcome[S any] struct {
	Best       S
	Score      int
	Iterations int
	Status     Status
}
