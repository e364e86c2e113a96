package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimeslotOverlaps(t *testing.T) {
	scenarios := []struct {
		name     string
		a, b     Timeslot
		overlaps bool
	}{
		{"identical", Timeslot{1, 3}, Timeslot{1, 3}, true},
		{"partial overlap", Timeslot{1, 3}, Timeslot{2, 4}, true},
		{"containment", Timeslot{1, 5}, Timeslot{2, 3}, true},
		{"adjacent half-open", Timeslot{1, 3}, Timeslot{3, 5}, false},
		{"disjoint", Timeslot{1, 2}, Timeslot{4, 6}, false},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.name, func(t *testing.T) {
			assert.Equal(t, scenario.overlaps, scenario.a.Overlaps(scenario.b))
			assert.Equal(t, scenario.overlaps, scenario.b.Overlaps(scenario.a))
		})
	}
}

func TestAssignmentClone(t *testing.T) {
	assignment := Assignment{0: 1, 1: 2}

	clone := assignment.Clone()
	clone[0] = 7

	assert.Equal(t, uint64(1), assignment[0])
	assert.Equal(t, uint64(7), clone[0])
}

func TestAssignmentLoad(t *testing.T) {
	assignment := Assignment{0: 1, 1: 1, 2: 2}

	assert.Equal(t, uint64(2), assignment.Load(1))
	assert.Equal(t, uint64(1), assignment.Load(2))
	assert.Equal(t, uint64(0), assignment.Load(3))
}
