package model

import (
	"cmp"
	"slices"

	"github.com/samber/lo"
)

// standardScorer holds configuration data only, so a single instance can
// score distinct assignment snapshots concurrently.
type standardScorer struct {
	subjects    []Subject
	faculty     map[uint64]Faculty
	constraints []Constraint
}

func newStandardScorer(subjects []Subject, faculty []Faculty, constraints []Constraint) *standardScorer {
	return &standardScorer{
		subjects:    subjects,
		faculty:     lo.KeyBy(faculty, func(member Faculty) uint64 { return member.Id }),
		constraints: constraints,
	}
}

func (scorer *standardScorer) Score(assignment Assignment) int {
	score := 0
	for _, subject := range scorer.subjects {
		assigned := scorer.assignedFaculty(subject, assignment)
		for _, constraint := range scorer.constraints {
			if constraint.Evaluate(subject, assigned, assignment) {
				score++
			}
		}
	}
	return score
}

func (scorer *standardScorer) MaxScore() int {
	return len(scorer.subjects) * len(scorer.constraints)
}

func (scorer *standardScorer) Violations(assignment Assignment) []Violation {
	violations := []Violation{}
	for _, subject := range scorer.subjects {
		assigned := scorer.assignedFaculty(subject, assignment)
		for _, constraint := range scorer.constraints {
			if !constraint.Evaluate(subject, assigned, assignment) {
				violations = append(violations, Violation{Subject: subject.Id, Constraint: constraint.Name()})
			}
		}
	}

	slices.SortFunc(violations, func(a, b Violation) int {
		if comparison := cmp.Compare(a.Subject, b.Subject); comparison != 0 {
			return comparison
		}
		return cmp.Compare(a.Constraint, b.Constraint)
	})

	return violations
}

func (scorer *standardScorer) assignedFaculty(subject Subject, assignment Assignment) Faculty {
	assigned, ok := scorer.faculty[assignment[subject.Id]]
	if !ok {
		panic("faculty not found")
	}
	return assigned
}
