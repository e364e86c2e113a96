package model

type availabilityConstraint struct{}

// NewAvailabilityConstraint checks that the assigned faculty is among the
// subject's eligible faculty members.
func NewAvailabilityConstraint() Constraint {
	return &availabilityConstraint{}
}

func (constraint *availabilityConstraint) Name() string {
	return "availability"
}

func (constraint *availabilityConstraint) Evaluate(subject Subject, faculty Faculty, _ Assignment) bool {
	return subject.Eligible[faculty.Id]
}
