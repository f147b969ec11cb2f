package repository

import (
	"context"

	"github.com/spec-kit/student-registry/internal/domain"
)

// StudentRepository defines persistence access for students.
type StudentRepository interface {
	Create(ctx context.Context, student *domain.Student) error
	GetByID(ctx context.Context, id int64) (*domain.Student, error)
}

type studentRepository struct {
	db Querier
}

// NewStudentRepository returns a Postgres-backed implementation.
func NewStudentRepository(db Querier) StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) Create(ctx context.Context, student *domain.Student) error {
	const query = `
        INSERT INTO students (name, age, email)
        VALUES ($1, $2, $3)
        RETURNING id, created_at`

	return r.db.QueryRow(ctx, query,
		student.Name,
		student.Age,
		student.Email,
	).Scan(&student.ID, &student.CreatedAt)
}

func (r *studentRepository) GetByID(ctx context.Context, id int64) (*domain.Student, error) {
	const query = `
        SELECT id, name, age, email, created_at
        FROM students WHERE id=$1`

	var student domain.Student
	if err := r.db.QueryRow(ctx, query, id).Scan(
		&student.ID,
		&student.Name,
		&student.Age,
		&student.Email,
		&student.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &student, nil
}
