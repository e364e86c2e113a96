package main

import (
	"fmt"
	"log"
	"slices"

	"facultyscheduling/internal/model"
	"facultyscheduling/internal/search"
)

func main() {
	const File string = "test/input/sample.json"

	input, err := model.InputFromJson(File)
	if err != nil {
		log.Fatalf("cannot parse input file: %v", err)
	}

	subjects := input.GetSubjects()
	faculty := input.GetFaculty()
	constraints := model.DefaultConstraints(subjects)

	annealer, err := search.NewAnnealer[model.Assignment](input.GetConfig())
	if err != nil {
		log.Fatal(err)
	}
	scheduler := model.NewScheduler(annealer)

	result, err := scheduler.Build(subjects, faculty, constraints)
	if err != nil {
		log.Fatal(err)
	}

	subjectNames := make(map[uint64]string)
	for _, subject := range subjects {
		subjectNames[subject.Id] = subject.Name
	}
	facultyNames := make(map[uint64]string)
	for _, member := range faculty {
		facultyNames[member.Id] = member.Name
	}

	subjectIds := make([]uint64, 0, len(result.Assignment))
	for subjectId := range result.Assignment {
		subjectIds = append(subjectIds, subjectId)
	}
	slices.Sort(subjectIds)

	fmt.Printf("Status: %v | Score: %v/%v\n", result.Status, result.Score, result.MaxScore)
	for _, subjectId := range subjectIds {
		facultyId := result.Assignment[subjectId]
		fmt.Printf("%v -> %v\n", subjectNames[subjectId], facultyNames[facultyId])
	}

	if len(result.Violations) > 0 {
		fmt.Printf("Violations (%v):\n", len(result.Violations))
		for _, violation := range result.Violations {
			fmt.Printf("- %v: %v\n", subjectNames[violation.Subject], violation.Constraint)
		}
	}
}
