package model

import "facultyscheduling/internal/search"

// Result is the outcome of one scheduling run: the best assignment ever
// observed (not necessarily the last accepted one), its score against the
// maximum attainable one, and the checks it still violates.
type Result struct {
	Assignment Assignment
	Score      int
	MaxScore   int
	Status     search.Status
	Violations []Violation
}

type Scheduler interface {
	// Runs the search over the given configuration and returns the best assignment observed
	Build(subjects []Subject, faculty []Faculty, constraints []Constraint) (Result, error)

	// Checks whether the assignment is total and satisfies every constraint for every subject
	Verify(assignment Assignment, subjects []Subject, faculty []Faculty, constraints []Constraint) bool
}

func NewScheduler(annealer search.Annealer[Assignment]) Scheduler {
	return newAnnealingScheduler(annealer)
}
