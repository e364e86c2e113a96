package model

import "math/rand"

type NeighborGenerator interface {
	// Returns a copy of the assignment with exactly one subject reassigned; the input is never mutated
	Propose(assignment Assignment, rng *rand.Rand) Assignment
}

func NewNeighborGenerator(subjects []Subject, faculty []Faculty) NeighborGenerator {
	return newUniformNeighborGenerator(subjects, faculty)
}
