package models

// StudentAverage pairs a student with its computed average.
// Index is the 1-based position of the student in the store.
type StudentAverage struct {
	Index   int
	Student Student
	Average float64
}

// AveragesReport is the output of the averages menu option.
type AveragesReport struct {
	Students     []StudentAverage
	ClassAverage float64
	Top          StudentAverage
}

// SituationReport groups students by situation, each bucket sorted by average descending.
type SituationReport struct {
	Pass        []StudentAverage
	Conditional []StudentAverage
	Fail        []StudentAverage
}

// SearchMatch is one hit of a name search.
type SearchMatch = StudentAverage
