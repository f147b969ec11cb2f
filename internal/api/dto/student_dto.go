package dto

// CreateStudentRequest payload for student registration.
type CreateStudentRequest struct {
	Name  string `json:"name"`
	Age   int    `json:"age"`
	Email string `json:"email"`
}

// StudentResponse is the public view of a student.
type StudentResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Age   int    `json:"age"`
	Email string `json:"email"`
}

// EnrolledCoursesResponse lists the course IDs a student is enrolled in.
type EnrolledCoursesResponse struct {
	EnrolledCourses []int64 `json:"enrolled_courses"`
}
