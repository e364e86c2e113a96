package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeometricScheduleDecaysTowardFloor(t *testing.T) {
	schedule := NewGeometricSchedule(10, 0.9, 0.5)

	previous := schedule.Temperature(0)
	assert.Equal(t, 10.0, previous)

	for iteration := 1; iteration <= 100; iteration++ {
		current := schedule.Temperature(iteration)
		assert.LessOrEqual(t, current, previous)
		assert.GreaterOrEqual(t, current, 0.5)
		previous = current
	}

	assert.Equal(t, 0.5, schedule.Temperature(1_000))
}

func TestLinearScheduleEndpoints(t *testing.T) {
	schedule := NewLinearSchedule(10, 1, 101)

	assert.Equal(t, 10.0, schedule.Temperature(0))
	assert.Equal(t, 1.0, schedule.Temperature(100))
	assert.Equal(t, 1.0, schedule.Temperature(5_000)) // Past the budget the floor holds

	previous := schedule.Temperature(0)
	for iteration := 1; iteration <= 100; iteration++ {
		current := schedule.Temperature(iteration)
		assert.Less(t, current, previous)
		previous = current
	}
}

func TestAnnealerWithScheduleRequiresSchedule(t *testing.T) {
	_, err := NewAnnealerWithSchedule[[]int](DefaultConfig(), nil)
	assert.Error(t, err)

	annealer, err := NewAnnealerWithSchedule[[]int](DefaultConfig(), NewLinearSchedule(10, 1e-3, 1_000))
	assert.NoError(t, err)
	assert.NotNil(t, annealer)
}
