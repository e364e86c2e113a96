package model

import (
	"facultyscheduling/internal/search"
)

type configurationError struct {
	reason string
}

func (err configurationError) Error() string {
	return "invalid scheduling configuration: " + err.reason
}

type annealingScheduler struct {
	annealer search.Annealer[Assignment]
}

func newAnnealingScheduler(annealer search.Annealer[Assignment]) *annealingScheduler {
	return &annealingScheduler{annealer: annealer}
}

func (scheduler *annealingScheduler) Build(
	subjects []Subject,
	faculty []Faculty,
	constraints []Constraint,
) (Result, error) {
	if len(subjects) == 0 {
		return Result{}, configurationError{"subject set is empty"}
	} else if len(faculty) == 0 {
		return Result{}, configurationError{"faculty set is empty"}
	} else if len(constraints) == 0 {
		return Result{}, configurationError{"constraint set is empty"}
	}

	//** Initialize dependencies
	scorer := NewScorer(subjects, faculty, constraints)
	generator := NewNeighborGenerator(subjects, faculty)

	//** Build search problem
	problem := search.Problem[Assignment]{
		Initial:  initialAssignment(subjects, faculty),
		MaxScore: scorer.MaxScore(),
		Score:    scorer.Score,
		Propose:  generator.Propose,
		Snapshot: Assignment.Clone,
	}

	//** Run the search
	outcome, err := scheduler.annealer.Run(problem)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Assignment: outcome.Best,
		Score:      outcome.Score,
		MaxScore:   problem.MaxScore,
		Status:     outcome.Status,
		Violations: scorer.Violations(outcome.Best),
	}, nil
}

func (scheduler *annealingScheduler) Verify(
	assignment Assignment,
	subjects []Subject,
	faculty []Faculty,
	constraints []Constraint,
) bool {
	return verify(assignment, subjects, faculty, constraints)
}
