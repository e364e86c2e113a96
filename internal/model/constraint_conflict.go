package model

import "github.com/samber/lo"

type conflictConstraint struct {
	subjects map[uint64]Subject
}

// NewConflictConstraint checks that no other subject assigned to the same
// faculty overlaps the subject's timeslot.
func NewConflictConstraint(subjects []Subject) Constraint {
	return &conflictConstraint{
		subjects: lo.KeyBy(subjects, func(subject Subject) uint64 { return subject.Id }),
	}
}

func (constraint *conflictConstraint) Name() string {
	return "conflict"
}

func (constraint *conflictConstraint) Evaluate(subject Subject, faculty Faculty, assignment Assignment) bool {
	for otherId, assigned := range assignment {
		if otherId == subject.Id || assigned != faculty.Id {
			continue
		}

		other, ok := constraint.subjects[otherId]
		if !ok {
			panic("subject not found")
		}

		if subject.Slot.Overlaps(other.Slot) {
			return false
		}
	}
	return true
}
