package model

import (
	"fmt"
	"strings"
)

// Record - Represents one stored record (a student) identified by its integer key.
// The fields are unexported so that the key can never change once the record is created,
// a Record is passed around by value and every copy is an independent, read-only view.
type Record struct {
	key       int64
	firstName string
	lastName  string
	score     float64
}

// NewRecord - Returns a new Record.
// The name fields are cloned so the record never shares memory with the caller's buffers, for instance
// a word list read from file where each name is a substring of a much larger string.
//   - key is the unique identifier of the record
//   - firstName and lastName are the display names
//   - score is the grade-point value
func NewRecord(key int64, firstName, lastName string, score float64) Record {
	return Record{
		key:       key,
		firstName: strings.Clone(firstName),
		lastName:  strings.Clone(lastName),
		score:     score,
	}
}

// Key - Returns the record key
func (R Record) Key() int64 {
	return R.key
}

// FirstName - Returns the first name
func (R Record) FirstName() string {
	return R.firstName
}

// LastName - Returns the last name
func (R Record) LastName() string {
	return R.lastName
}

// FullName - Returns first and last name separated by a space
func (R Record) FullName() string {
	return strings.TrimSpace(R.firstName + " " + R.lastName)
}

// Score - Returns the grade-point value
func (R Record) Score() float64 {
	return R.score
}

// Equal - Two records are the same logical entity if their keys are equal, payload is not compared
func (R Record) Equal(other Record) bool {
	return R.key == other.key
}

// String - Implements fmt.Stringer
func (R Record) String() string {
	return fmt.Sprintf("%d %s %.2f", R.key, R.FullName(), R.score)
}
