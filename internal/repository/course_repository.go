package repository

import (
	"context"

	"github.com/spec-kit/student-registry/internal/domain"
)

// CourseRepository defines persistence access for courses.
type CourseRepository interface {
	Create(ctx context.Context, course *domain.Course) error
	GetByID(ctx context.Context, id int64) (*domain.Course, error)
}

type courseRepository struct {
	db Querier
}

// NewCourseRepository returns a Postgres-backed implementation.
func NewCourseRepository(db Querier) CourseRepository {
	return &courseRepository{db: db}
}

func (r *courseRepository) Create(ctx context.Context, course *domain.Course) error {
	const query = `
        INSERT INTO courses (title, description)
        VALUES ($1, $2)
        RETURNING id, created_at`

	return r.db.QueryRow(ctx, query,
		course.Title,
		course.Description,
	).Scan(&course.ID, &course.CreatedAt)
}

func (r *courseRepository) GetByID(ctx context.Context, id int64) (*domain.Course, error) {
	const query = `
        SELECT id, title, description, created_at
        FROM courses WHERE id=$1`

	var course domain.Course
	if err := r.db.QueryRow(ctx, query, id).Scan(
		&course.ID,
		&course.Title,
		&course.Description,
		&course.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &course, nil
}
