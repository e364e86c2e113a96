package model

import "github.com/samber/lo"

// Each subject starts on the first faculty of the pool it is eligible for.
// A subject whose eligible set matches nobody falls back to the head of the
// pool: the run proceeds and the mismatch surfaces in the violation report.
func initialAssignment(subjects []Subject, faculty []Faculty) Assignment {
	assignment := make(Assignment, len(subjects))
	for _, subject := range subjects {
		member, ok := lo.Find(faculty, func(member Faculty) bool { return subject.Eligible[member.Id] })
		if !ok {
			member = faculty[0]
		}
		assignment[subject.Id] = member.Id
	}
	return assignment
}

func verify(
	assignment Assignment,
	subjects []Subject,
	faculty []Faculty,
	constraints []Constraint,
) bool {
	if len(assignment) != len(subjects) {
		return false
	}

	facultyById := lo.KeyBy(faculty, func(member Faculty) uint64 { return member.Id })

	for _, subject := range subjects {
		assignedId, ok := assignment[subject.Id]
		if !ok {
			return false
		}

		assigned, ok := facultyById[assignedId]
		if !ok {
			return false
		}

		violated := lo.SomeBy(constraints, func(constraint Constraint) bool {
			return !constraint.Evaluate(subject, assigned, assignment)
		})
		if violated {
			return false
		}
	}

	return true
}
