package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered    EventType = "user_registered"
	EventStudentCreated    EventType = "student_created"
	EventCourseCreated     EventType = "course_created"
	EventEnrollmentCreated EventType = "enrollment_created"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Actor     string      `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}

// StudentCreatedPayload payload.
type StudentCreatedPayload struct {
	StudentID int64  `json:"student_id"`
	Name      string `json:"name"`
}

// CourseCreatedPayload payload.
type CourseCreatedPayload struct {
	CourseID int64  `json:"course_id"`
	Title    string `json:"title"`
}

// EnrollmentCreatedPayload payload.
type EnrollmentCreatedPayload struct {
	EnrollmentID int64 `json:"enrollment_id"`
	StudentID    int64 `json:"student_id"`
	CourseID     int64 `json:"course_id"`
}
