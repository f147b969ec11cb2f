package domain

import "time"

// Student is the domain model for a registered student.
type Student struct {
	ID        int64
	Name      string
	Age       int
	Email     string
	CreatedAt time.Time
}
