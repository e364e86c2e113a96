package model

import (
	"facultyscheduling/internal/search"
)

// BuildMultiStart runs independent annealing searches concurrently, one per
// restart with a seed derived from the base config, and returns the best
// result found across all of them. Each run owns its own state, so no
// synchronization beyond the collection channel is needed.
func BuildMultiStart(
	config search.Config,
	restarts int,
	subjects []Subject,
	faculty []Faculty,
	constraints []Constraint,
) (Result, error) {
	if restarts < 1 {
		restarts = 1
	}

	type runOutcome struct {
		result Result
		err    error
	}
	outcomesChannel := make(chan runOutcome)

	// Execute runs on different goroutines and fan their outcomes in
	for i := 0; i < restarts; i++ {
		go func(seed int64) {
			runConfig := config
			runConfig.Seed = seed

			annealer, err := search.NewAnnealer[Assignment](runConfig)
			if err != nil {
				outcomesChannel <- runOutcome{err: err}
				return
			}

			result, err := NewScheduler(annealer).Build(subjects, faculty, constraints)
			outcomesChannel <- runOutcome{result: result, err: err}
		}(config.Seed + int64(i))
	}

	var best Result
	var firstErr error
	haveBest := false

	// Collect generated outcomes
	collected := 0
	for outcome := range outcomesChannel {
		if outcome.err != nil {
			if firstErr == nil {
				firstErr = outcome.err
			}
		} else if !haveBest || outcome.result.Score > best.Score {
			best = outcome.result
			haveBest = true
		}

		// Check whether all outcomes have been collected to properly close the channel
		if collected++; collected == restarts {
			close(outcomesChannel)
		}
	}

	if firstErr != nil {
		return Result{}, firstErr
	}
	return best, nil
}
