package repository

import (
	"context"

	"github.com/spec-kit/student-registry/internal/domain"
)

// EnrollmentRepository defines persistence access for enrollments.
type EnrollmentRepository interface {
	Create(ctx context.Context, enrollment *domain.Enrollment) error
	Exists(ctx context.Context, studentID, courseID int64) (bool, error)
	ListCourseIDsByStudent(ctx context.Context, studentID int64) ([]int64, error)
}

type enrollmentRepository struct {
	db Querier
}

// NewEnrollmentRepository returns a Postgres-backed implementation.
func NewEnrollmentRepository(db Querier) EnrollmentRepository {
	return &enrollmentRepository{db: db}
}

func (r *enrollmentRepository) Create(ctx context.Context, enrollment *domain.Enrollment) error {
	const query = `
        INSERT INTO enrollments (student_id, course_id)
        VALUES ($1, $2)
        RETURNING id, created_at`

	return r.db.QueryRow(ctx, query,
		enrollment.StudentID,
		enrollment.CourseID,
	).Scan(&enrollment.ID, &enrollment.CreatedAt)
}

func (r *enrollmentRepository) Exists(ctx context.Context, studentID, courseID int64) (bool, error) {
	const query = `
        SELECT EXISTS (
            SELECT 1 FROM enrollments WHERE student_id=$1 AND course_id=$2
        )`

	var exists bool
	if err := r.db.QueryRow(ctx, query, studentID, courseID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *enrollmentRepository) ListCourseIDsByStudent(ctx context.Context, studentID int64) ([]int64, error) {
	const query = `
        SELECT course_id FROM enrollments
        WHERE student_id=$1
        ORDER BY course_id`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
