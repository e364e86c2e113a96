package search

import (
	"math"
	"math/rand"
)

type invalidProblemError struct {
	reason string
}

func (err invalidProblemError) Error() string {
	return "invalid search problem: " + err.reason
}

type seededAnnealer[S any] struct {
	config   Config
	schedule Schedule
}

func (annealer *seededAnnealer[S]) Run(problem Problem[S]) (Outcome[S], error) {
	if problem.Score == nil {
		return Outcome[S]{}, invalidProblemError{"score function is nil"}
	} else if problem.Propose == nil {
		return Outcome[S]{}, invalidProblemError{"propose function is nil"}
	} else if problem.Snapshot == nil {
		return Outcome[S]{}, invalidProblemError{"snapshot function is nil"}
	}

	rng := rand.New(rand.NewSource(annealer.config.Seed))

	current := problem.Snapshot(problem.Initial)
	currentScore := problem.Score(current)

	best := problem.Snapshot(current)
	bestScore := currentScore

	if bestScore == problem.MaxScore {
		return Outcome[S]{Best: best, Score: bestScore, Status: Converged}, nil
	}

	for iteration := 1; iteration <= annealer.config.MaxIterations; iteration++ {
		temperature := annealer.schedule.Temperature(iteration)

		candidate := problem.Propose(current, rng)
		candidateScore := problem.Score(candidate)

		// Improvements are always accepted; worsening moves are accepted with
		// probability exp(delta / temperature), which vanishes as the schedule cools
		delta := candidateScore - currentScore
		if delta >= 0 || rng.Float64() < math.Exp(float64(delta)/temperature) {
			current = candidate
			currentScore = candidateScore
		}

		if candidateScore > bestScore {
			best = problem.Snapshot(candidate)
			bestScore = candidateScore
		}

		if problem.Hook != nil {
			problem.Hook(iteration, bestScore, temperature)
		}

		if bestScore == problem.MaxScore {
			return Outcome[S]{Best: best, Score: bestScore, Iterations: iteration, Status: Converged}, nil
		}
	}

	return Outcome[S]{
		Best:       best,
		Score:      bestScore,
		Iterations: annealer.config.MaxIterations,
		Status:     Exhausted,
	}, nil
}
