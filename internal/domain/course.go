package domain

import "time"

// Course is the domain model for an offered course.
type Course struct {
	ID          int64
	Title       string
	Description string
	CreatedAt   time.Time
}
