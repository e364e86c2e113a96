package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testSubjects() []Subject {
	return []Subject{
		{Id: 0, Name: "Math101", Eligible: map[uint64]bool{0: true, 1: true}, Slot: Timeslot{1, 3}},
		{Id: 1, Name: "Physics102", Eligible: map[uint64]bool{0: true}, Slot: Timeslot{2, 4}},
	}
}

func testFaculty() []Faculty {
	return []Faculty{
		{Id: 0, Name: "A", Capacity: 1},
		{Id: 1, Name: "B", Capacity: 1},
	}
}

func TestAvailabilityConstraint(t *testing.T) {
	subjects, faculty := testSubjects(), testFaculty()
	constraint := NewAvailabilityConstraint()

	assert.Equal(t, "availability", constraint.Name())
	assert.True(t, constraint.Evaluate(subjects[0], faculty[1], Assignment{0: 1, 1: 0}))
	assert.False(t, constraint.Evaluate(subjects[1], faculty[1], Assignment{0: 0, 1: 1}))
}

func TestWorkloadConstraint(t *testing.T) {
	subjects, faculty := testSubjects(), testFaculty()
	constraint := NewWorkloadConstraint()

	assert.Equal(t, "workload", constraint.Name())

	// Both subjects piled onto faculty 0 exceed its capacity of 1
	overloaded := Assignment{0: 0, 1: 0}
	assert.False(t, constraint.Evaluate(subjects[0], faculty[0], overloaded))

	balanced := Assignment{0: 1, 1: 0}
	assert.True(t, constraint.Evaluate(subjects[0], faculty[1], balanced))
	assert.True(t, constraint.Evaluate(subjects[1], faculty[0], balanced))
}

func TestConflictConstraint(t *testing.T) {
	subjects, faculty := testSubjects(), testFaculty()
	constraint := NewConflictConstraint(subjects)

	assert.Equal(t, "conflict", constraint.Name())

	// The subjects' timeslots [1,3) and [2,4) overlap, so sharing faculty 0 conflicts
	shared := Assignment{0: 0, 1: 0}
	assert.False(t, constraint.Evaluate(subjects[0], faculty[0], shared))
	assert.False(t, constraint.Evaluate(subjects[1], faculty[0], shared))

	split := Assignment{0: 1, 1: 0}
	assert.True(t, constraint.Evaluate(subjects[0], faculty[1], split))
	assert.True(t, constraint.Evaluate(subjects[1], faculty[0], split))
}

func TestConflictConstraintIgnoresDisjointSlots(t *testing.T) {
	subjects := []Subject{
		{Id: 0, Eligible: map[uint64]bool{0: true}, Slot: Timeslot{1, 3}},
		{Id: 1, Eligible: map[uint64]bool{0: true}, Slot: Timeslot{3, 5}},
	}
	faculty := Faculty{Id: 0, Capacity: 2}
	constraint := NewConflictConstraint(subjects)

	shared := Assignment{0: 0, 1: 0}
	assert.True(t, constraint.Evaluate(subjects[0], faculty, shared))
	assert.True(t, constraint.Evaluate(subjects[1], faculty, shared))
}
