package search

import "fmt"

type Annealer[S any] interface {
	Run(problem Problem[S]) (Outcome[S], error) // Returns the best state observed during the run together with its score and the terminal status
}

// Config gathers the parameters of a single annealing run. The same config
// and the same problem always reproduce the same sequence of accepted states.
type Config struct {
	InitialTemperature float64
	CoolingRate        float64 // Multiplicative decay applied to the temperature once per iteration
	TemperatureFloor   float64 // Lower bound the temperature never decays below
	MaxIterations      int
	Seed               int64
}

func (config Config) Validate() error {
	if config.InitialTemperature <= 0 {
		return fmt.Errorf("initial temperature must be positive: %v", config.InitialTemperature)
	}
	if config.CoolingRate <= 0 || config.CoolingRate >= 1 {
		return fmt.Errorf("cooling rate must lie strictly between 0 and 1: %v", config.CoolingRate)
	}
	if config.TemperatureFloor <= 0 || config.TemperatureFloor > config.InitialTemperature {
		return fmt.Errorf("temperature floor must lie in (0, initial temperature]: %v", config.TemperatureFloor)
	}
	if config.MaxIterations < 1 {
		return fmt.Errorf("max iterations must be at least 1: %v", config.MaxIterations)
	}
	return nil
}

func DefaultConfig() Config {
	return Config{
		InitialTemperature: 10,
		CoolingRate:        0.995,
		TemperatureFloor:   1e-3,
		MaxIterations:      20_000,
	}
}

func NewAnnealer[S any](config Config) (Annealer[S], error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &seededAnnealer[S]{
		config:   config,
		schedule: NewGeometricSchedule(config.InitialTemperature, config.CoolingRate, config.TemperatureFloor),
	}, nil
}

func NewAnnealerWithSchedule[S any](config Config, schedule Schedule) (Annealer[S], error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if schedule == nil {
		return nil, fmt.Errorf("schedule must not be nil")
	}
	return &seededAnnealer[S]{config: config, schedule: schedule}, nil
}
