package domain

import "time"

// Enrollment links a student to a course. The (student, course) pair is unique.
type Enrollment struct {
	ID        int64
	StudentID int64
	CourseID  int64
	CreatedAt time.Time
}
