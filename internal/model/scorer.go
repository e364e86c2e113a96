package model

// Violation records one unsatisfied (subject, constraint) check.
type Violation struct {
	Subject    uint64
	Constraint string
}

type Scorer interface {
	// Returns the number of satisfied (subject, constraint) checks for the assignment
	Score(assignment Assignment) int

	// Returns the score of an assignment satisfying every constraint for every subject
	MaxScore() int

	// Returns the checks violated by the assignment, sorted by subject id and then constraint name
	Violations(assignment Assignment) []Violation
}

func NewScorer(subjects []Subject, faculty []Faculty, constraints []Constraint) Scorer {
	return newStandardScorer(subjects, faculty, constraints)
}
