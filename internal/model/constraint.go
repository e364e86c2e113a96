package model

// Constraint is a pure predicate checking one scheduling rule for a subject
// and its assigned faculty within a full assignment. Any implementation of
// this interface plugs into the scorer without further registration.
type Constraint interface {
	Name() string

	// Checks whether the rule holds for the subject and the faculty it is assigned to under the given assignment
	Evaluate(subject Subject, faculty Faculty, assignment Assignment) bool
}

// DefaultConstraints returns the built-in availability, workload and conflict
// constraints. The order only fixes the order of violation reports.
func DefaultConstraints(subjects []Subject) []Constraint {
	return []Constraint{
		NewAvailabilityConstraint(),
		NewWorkloadConstraint(),
		NewConflictConstraint(subjects),
	}
}
