package dto

// CreateEnrollmentRequest payload for enrolling a student in a course.
type CreateEnrollmentRequest struct {
	StudentID int64 `json:"student_id"`
	CourseID  int64 `json:"course_id"`
}

// EnrollmentResponse confirms a new enrollment.
type EnrollmentResponse struct {
	ID        int64  `json:"id"`
	StudentID int64  `json:"student_id"`
	CourseID  int64  `json:"course_id"`
	Message   string `json:"message"`
}
