package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleInputFile = "../../test/input/sample.json"

func TestInputFromJson(t *testing.T) {
	input, err := InputFromJson(sampleInputFile)
	assert.NoError(t, err)

	subjects := input.GetSubjects()
	faculty := input.GetFaculty()

	assert.Len(t, subjects, 6)
	assert.Len(t, faculty, 4)

	assert.Equal(t, "Math101", subjects[0].Name)
	assert.Equal(t, Timeslot{Start: 1, End: 3}, subjects[0].Slot)
	assert.Equal(t, map[uint64]bool{0: true, 1: true}, subjects[0].Eligible)

	assert.Equal(t, "Dr. Curie", faculty[2].Name)
	assert.Equal(t, uint64(2), faculty[2].Capacity)

	config := input.GetConfig()
	assert.NoError(t, config.Validate())
	assert.Equal(t, 0.995, config.CoolingRate)
	assert.Equal(t, int64(42), config.Seed)
	assert.Equal(t, 20_000, config.MaxIterations)
	assert.Equal(t, 4, input.Search.Restarts)
}

func TestInputFromJsonMissingFile(t *testing.T) {
	_, err := InputFromJson("does-not-exist.json")
	assert.Error(t, err)
}

func TestGetConfigFillsDefaults(t *testing.T) {
	input := ModelInput{}
	config := input.GetConfig()

	assert.NoError(t, config.Validate())
}

func TestSampleInputIsSolvable(t *testing.T) {
	input, err := InputFromJson(sampleInputFile)
	assert.NoError(t, err)

	subjects := input.GetSubjects()
	faculty := input.GetFaculty()
	constraints := DefaultConstraints(subjects)

	result, err := BuildMultiStart(input.GetConfig(), input.Search.Restarts, subjects, faculty, constraints)
	assert.NoError(t, err)
	assert.Equal(t, result.MaxScore, result.Score)
	assert.Empty(t, result.Violations)

	scheduler := newTestScheduler(t, input.GetConfig().Seed)
	assert.True(t, scheduler.Verify(result.Assignment, subjects, faculty, constraints))
}
