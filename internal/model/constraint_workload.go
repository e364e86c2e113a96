package model

type workloadConstraint struct{}

// NewWorkloadConstraint checks that the assigned faculty's load under the
// candidate assignment does not exceed its capacity.
func NewWorkloadConstraint() Constraint {
	return &workloadConstraint{}
}

func (constraint *workloadConstraint) Name() string {
	return "workload"
}

func (constraint *workloadConstraint) Evaluate(_ Subject, faculty Faculty, assignment Assignment) bool {
	return assignment.Load(faculty.Id) <= faculty.Capacity
}
