package dto

// CreateCourseRequest payload for new courses.
type CreateCourseRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// CourseResponse is the public view of a course.
type CourseResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}
