package service

import (
	"strings"

	"strive/backend/internal/domain"
)

// Canonical lift names tracked as per-account maxima. Submitted exercise
// names are matched case-insensitively.
const (
	liftBenchPress = "bench press"
	liftSquat      = "squat"
	liftDeadlift   = "deadlift"
)

// ApplySubmission folds a submission's exercises into the account's current
// lift maxima and computes the total-weight delta the submission contributes
// (the sum of weight*reps*sets over all exercises). Maxima only ever go up:
// an exercise raises the maximum for its canonical lift when its weight
// exceeds the running value, and multiple entries of the same lift within one
// submission are each compared against the running maximum in order.
//
// Pure function. Persisting the result is the caller's job and must happen
// as a single atomic set-maxima-and-increment-total update.
func ApplySubmission(current domain.LiftMaxima, exercises []domain.Exercise) (domain.LiftMaxima, float64) {
	maxima := current
	var delta float64

	for _, ex := range exercises {
		delta += ex.Lifted()

		switch {
		case strings.EqualFold(ex.Name, liftBenchPress):
			if ex.Weight > maxima.Bench {
				maxima.Bench = ex.Weight
			}
		case strings.EqualFold(ex.Name, liftSquat):
			if ex.Weight > maxima.Squat {
				maxima.Squat = ex.Weight
			}
		case strings.EqualFold(ex.Name, liftDeadlift):
			if ex.Weight > maxima.Deadlift {
				maxima.Deadlift = ex.Weight
			}
		}
	}

	return maxima, delta
}
