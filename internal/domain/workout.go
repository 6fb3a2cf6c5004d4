package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Exercise is one logged set-group within a workout session. It has no
// identity beyond its position in the session; the id is client-assigned
// (the server fills in a UUID when the client leaves it empty).
type Exercise struct {
	ID       string  `bson:"id" json:"id"`
	BodyPart string  `bson:"bodyPart" json:"bodyPart"`
	Name     string  `bson:"exercise" json:"exercise"`
	Sets     int     `bson:"sets" json:"sets"`
	Reps     int     `bson:"reps" json:"reps"`
	Weight   float64 `bson:"weight" json:"weight"`
}

// Lifted is the exercise's contribution to an account's total weight.
func (e Exercise) Lifted() float64 {
	return e.Weight * float64(e.Reps) * float64(e.Sets)
}

// WorkoutSession is one logged exercise session. Sessions are immutable once
// persisted: created exactly once per submission, never updated or deleted.
type WorkoutSession struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AccountID   primitive.ObjectID `bson:"userId" json:"userId"`
	SessionTime int                `bson:"sessionTime" json:"sessionTime"` // seconds
	Exercises   []Exercise         `bson:"exercises" json:"exercises"`
	// TotalWeight is the client-reported figure, kept for reference only.
	// The authoritative total is recomputed server-side from the exercises.
	TotalWeight float64   `bson:"totalWeight" json:"totalWeight"`
	Timestamp   string    `bson:"timestamp" json:"timestamp"` // ISO-8601, client clock
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}
