package model

import (
	"encoding/json"
	"os"

	"facultyscheduling/internal/search"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

type SubjectRecord struct {
	Id       uint64
	Name     string
	Eligible []uint64
	Start    uint64
	End      uint64
}

type FacultyRecord struct {
	Id       uint64
	Name     string
	Capacity uint64
}

type SearchParameters struct {
	InitialTemperature float64 `mapstructure:"initialTemperature"`
	CoolingRate        float64 `mapstructure:"coolingRate"`
	TemperatureFloor   float64 `mapstructure:"temperatureFloor"`
	MaxIterations      int     `mapstructure:"maxIterations"`
	Seed               int64
	Restarts           int
}

type ModelInput struct {
	Subjects []SubjectRecord
	Faculty  []FacultyRecord
	Search   SearchParameters
}

func (input ModelInput) GetSubjects() []Subject {
	return lo.Map(input.Subjects, func(record SubjectRecord, _ int) Subject {
		return Subject{
			Id:       record.Id,
			Name:     record.Name,
			Eligible: lo.SliceToMap(record.Eligible, func(id uint64) (uint64, bool) { return id, true }),
			Slot:     Timeslot{Start: record.Start, End: record.End},
		}
	})
}

func (input ModelInput) GetFaculty() []Faculty {
	return lo.Map(input.Faculty, func(record FacultyRecord, _ int) Faculty {
		return Faculty{
			Id:       record.Id,
			Name:     record.Name,
			Capacity: record.Capacity,
		}
	})
}

// GetConfig maps the input's search parameters onto an annealer config,
// filling every unset field from the defaults.
func (input ModelInput) GetConfig() search.Config {
	config := search.DefaultConfig()
	if input.Search.InitialTemperature > 0 {
		config.InitialTemperature = input.Search.InitialTemperature
	}
	if input.Search.CoolingRate > 0 {
		config.CoolingRate = input.Search.CoolingRate
	}
	if input.Search.TemperatureFloor > 0 {
		config.TemperatureFloor = input.Search.TemperatureFloor
	}
	if input.Search.MaxIterations > 0 {
		config.MaxIterations = input.Search.MaxIterations
	}
	config.Seed = input.Search.Seed
	return config
}

func InputFromJson(file string) (ModelInput, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return ModelInput{}, err
	}

	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return ModelInput{}, err
	}

	var input ModelInput
	if err := mapstructure.Decode(inputJson, &input); err != nil {
		return ModelInput{}, err
	}

	return input, nil
}
