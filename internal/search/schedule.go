package search

import "math"

type Schedule interface {
	// Returns the temperature governing the acceptance of worsening moves at the given iteration
	Temperature(iteration int) float64
}

type geometricSchedule struct {
	initial float64
	rate    float64
	floor   float64
}

// NewGeometricSchedule decays the temperature multiplicatively toward a floor:
// temperature(i) = max(initial * rate^i, floor).
func NewGeometricSchedule(initial, rate, floor float64) Schedule {
	return &geometricSchedule{initial: initial, rate: rate, floor: floor}
}

func (schedule *geometricSchedule) Temperature(iteration int) float64 {
	temperature := schedule.initial * math.Pow(schedule.rate, float64(iteration))
	if temperature <= schedule.floor {
		return schedule.floor
	}
	return temperature
}

type linearSchedule struct {
	initial    float64
	floor      float64
	iterations int
}

// NewLinearSchedule interpolates the temperature from initial down to floor
// across the run's iteration budget.
func NewLinearSchedule(initial, floor float64, iterations int) Schedule {
	return &linearSchedule{initial: initial, floor: floor, iterations: iterations}
}

func (schedule *linearSchedule) Temperature(iteration int) float64 {
	if schedule.iterations <= 1 || iteration >= schedule.iterations {
		return schedule.floor
	}
	fraction := float64(iteration) / float64(schedule.iterations-1)
	return schedule.initial + fraction*(schedule.floor-schedule.initial)
}
