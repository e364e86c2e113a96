package model

import (
	"math/rand"

	"github.com/samber/lo"
)

type uniformNeighborGenerator struct {
	subjectIds []uint64
	facultyIds []uint64
}

func newUniformNeighborGenerator(subjects []Subject, faculty []Faculty) *uniformNeighborGenerator {
	return &uniformNeighborGenerator{
		subjectIds: lo.Map(subjects, func(subject Subject, _ int) uint64 { return subject.Id }),
		facultyIds: lo.Map(faculty, func(member Faculty, _ int) uint64 { return member.Id }),
	}
}

func (generator *uniformNeighborGenerator) Propose(assignment Assignment, rng *rand.Rand) Assignment {
	neighbor := assignment.Clone()

	subject := generator.subjectIds[rng.Intn(len(generator.subjectIds))]

	// The new faculty is drawn from the full pool rather than the subject's
	// eligible set: infeasible moves score lower but keep regions reachable
	// that feasible-only moves could not escape to
	neighbor[subject] = generator.facultyIds[rng.Intn(len(generator.facultyIds))]

	return neighbor
}
