package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Account represents a registered user and their running aggregate stats.
//
// There is no credential material here: login is a name+email identity claim,
// not an authentication protocol (see README, "Trust boundaries").
type Account struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email    string             `bson:"email" json:"email"`
	Username string             `bson:"username" json:"username"`
	Name     string             `bson:"name" json:"name"`

	// Workouts is a legacy embedded list from an earlier schema iteration.
	// Current flows persist sessions in the separate workouts collection and
	// never populate this field.
	Workouts []Exercise `bson:"workouts" json:"workouts"`

	// Highest single-exercise weight ever logged for each canonical lift.
	// Monotonically non-decreasing; written only by the submission flow.
	MaxBench    float64 `bson:"maxBench" json:"maxBench"`
	MaxSquat    float64 `bson:"maxSquat" json:"maxSquat"`
	MaxDeadlift float64 `bson:"maxDeadlift" json:"maxDeadlift"`

	// TotalWeight accumulates weight*reps*sets across all submissions.
	// Increment-only; absent from the document until the first $inc.
	TotalWeight float64 `bson:"totalWeight,omitempty" json:"totalWeight"`
}

// LiftMaxima carries the three tracked per-lift maxima of an account.
type LiftMaxima struct {
	Bench    float64
	Squat    float64
	Deadlift float64
}

// Maxima returns the account's current tracked maxima.
func (a *Account) Maxima() LiftMaxima {
	return LiftMaxima{
		Bench:    a.MaxBench,
		Squat:    a.MaxSquat,
		Deadlift: a.MaxDeadlift,
	}
}
