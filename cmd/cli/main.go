package main

import (
	"flag"
	"fmt"
	"log"
	"slices"
	"strings"

	"facultyscheduling/internal/model"
	"facultyscheduling/internal/search"

	"github.com/samber/lo"
)

func main() {
	// Define arguments
	inputPtr := flag.String("input", "", "Path to the JSON input file describing subjects, faculty and search parameters")
	iterationsPtr := flag.Int("iterations", 0, "Iteration budget of a single search run. Overrides the input file when positive")
	temperaturePtr := flag.Float64("temperature", 0, "Initial temperature of the cooling schedule. Overrides the input file when positive")
	coolingPtr := flag.Float64("cooling", 0, "Multiplicative cooling rate, strictly between 0 and 1. Overrides the input file when positive")
	seedPtr := flag.Int64("seed", 0, "Base random seed. Identical seeds and inputs reproduce identical runs")
	restartsPtr := flag.Int("restarts", 0, "Number of concurrent independent runs; the best result across all of them is reported")
	verifyPtr := flag.Bool("verify", false, "Re-check the reported assignment against every constraint before printing")

	// Parse arguments
	flag.Parse()

	// Validate arguments
	if *inputPtr == "" {
		log.Fatal("an input file must be provided via the -input flag")
	}
	if *coolingPtr < 0 || *coolingPtr >= 1 {
		log.Fatalf("invalid cooling rate: %v", *coolingPtr)
	}

	input, err := model.InputFromJson(*inputPtr)
	if err != nil {
		log.Fatalf("cannot parse input file: %v", err)
	}

	subjects := input.GetSubjects()
	faculty := input.GetFaculty()
	constraints := model.DefaultConstraints(subjects)

	config := input.GetConfig()
	if *iterationsPtr > 0 {
		config.MaxIterations = *iterationsPtr
	}
	if *temperaturePtr > 0 {
		config.InitialTemperature = *temperaturePtr
	}
	if *coolingPtr > 0 {
		config.CoolingRate = *coolingPtr
	}
	if *seedPtr != 0 {
		config.Seed = *seedPtr
	}

	restarts := input.Search.Restarts
	if *restartsPtr > 0 {
		restarts = *restartsPtr
	}

	result, err := model.BuildMultiStart(config, restarts, subjects, faculty, constraints)
	if err != nil {
		log.Fatal(err)
	}

	if *verifyPtr {
		annealer, err := search.NewAnnealer[model.Assignment](config)
		if err != nil {
			log.Fatal(err)
		}
		valid := model.NewScheduler(annealer).Verify(result.Assignment, subjects, faculty, constraints)
		fmt.Printf("Verified: %v\n", valid)
	}

	printReport(result, subjects, faculty)
}

func printReport(result model.Result, subjects []model.Subject, faculty []model.Faculty) {
	subjectNames := lo.SliceToMap(subjects, func(subject model.Subject) (uint64, string) { return subject.Id, subject.Name })
	facultyNames := lo.SliceToMap(faculty, func(member model.Faculty) (uint64, string) { return member.Id, member.Name })

	fmt.Printf("Status: %v\n", result.Status)
	fmt.Printf("Score: %v/%v\n", result.Score, result.MaxScore)

	subjectIds := lo.Keys(result.Assignment)
	slices.Sort(subjectIds)

	fmt.Println(strings.Repeat("-", 40))
	for _, subjectId := range subjectIds {
		fmt.Printf("%v -> %v\n", subjectNames[subjectId], facultyNames[result.Assignment[subjectId]])
	}

	if len(result.Violations) == 0 {
		fmt.Println("No violations")
		return
	}

	fmt.Println(strings.Repeat("-", 40))
	fmt.Printf("Violations (%v):\n", len(result.Violations))
	for _, violation := range result.Violations {
		fmt.Printf("- %v: %v\n", subjectNames[violation.Subject], violation.Constraint)
	}
}
