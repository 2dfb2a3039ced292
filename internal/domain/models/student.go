package models

import "github.com/google/uuid"

// Student is one gradebook entry. Records are immutable once registered.
type Student struct {
	ID     uuid.UUID
	Name   string
	Age    int
	Scores []float64
}

// RegistrationRequest carries the raw answers given to the registration prompts.
type RegistrationRequest struct {
	Name   string
	Age    string
	Scores string
}

// Situation is the bucket a student falls in by average.
type Situation string

const (
	SituationPass        Situation = "pass"
	SituationConditional Situation = "conditional"
	SituationFail        Situation = "fail"
)

// Score bounds and bucket thresholds.
const (
	MinScore         = 0.0
	MaxScore         = 10.0
	PassThreshold    = 7.0
	ConditionalFloor = 5.0
)

// SeedStudent is the record the store starts with.
func SeedStudent() Student {
	return Student{
		ID:     uuid.New(),
		Name:   "Pablo Henrique Dias",
		Age:    19,
		Scores: []float64{10, 8, 9.5},
	}
}
