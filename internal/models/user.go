package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Exercise is a single workout entry embedded in its owner's user document.
type Exercise struct {
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Duration    string    `json:"duration"              bson:"duration"`
	Date        time.Time `json:"date"                  bson:"date"`
}

// User is a tracked user with an embedded, insertion-ordered exercise log.
type User struct {
	ID        primitive.ObjectID `json:"_id"       bson:"_id,omitempty"`
	Username  string             `json:"username"  bson:"username"`
	Exercises []Exercise         `json:"exercises" bson:"exercises"`
}

// UserRef is a user projected down to identifier and username.
type UserRef struct {
	ID       primitive.ObjectID `json:"_id"      bson:"_id"`
	Username string             `json:"username" bson:"username"`
}

// UserLog is the exercise-log view of a user after range filtering.
// Count is derived from Log, never stored.
type UserLog struct {
	ID       primitive.ObjectID `json:"_id"      bson:"_id"`
	Username string             `json:"username" bson:"username"`
	Count    int                `json:"count"    bson:"-"`
	Log      []Exercise         `json:"log"      bson:"exercises"`
}

// LogFilter narrows the exercise log returned for a user.
// Zero values impose no constraint.
type LogFilter struct {
	From  time.Time // exclusive lower bound on exercise dates
	To    time.Time // exclusive upper bound on exercise dates
	Limit int       // cap on returned entries, 0 means uncapped
}

// CreateUserRequest is the body for POST /api/exercise/new-user.
type CreateUserRequest struct {
	Username string `json:"username" validate:"required"`
}

// AddExerciseRequest is the body for POST /api/exercise/add.
type AddExerciseRequest struct {
	UserID      string `json:"userId"   validate:"required"`
	Description string `json:"description"`
	Duration    string `json:"duration" validate:"required"`
	Date        string `json:"date"`
}
