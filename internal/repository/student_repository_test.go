package repository

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/student-registry/internal/domain"
	apperrors "github.com/spec-kit/student-registry/pkg/util"
)

func TestStudentRepository_Create(t *testing.T) {
	mock := newMockPool(t)
	defer mock.Close()
	r := NewStudentRepository(mock)
	ctx := context.Background()

	student := &domain.Student{Name: "Ada", Age: 21, Email: "ada@example.com"}

	mock.ExpectQuery(`INSERT INTO students \(name, age, email\)`).
		WithArgs(student.Name, student.Age, student.Email).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(5), time.Now()))
	require.NoError(t, r.Create(ctx, student))
	require.Equal(t, int64(5), student.ID)

	mock.ExpectQuery(`INSERT INTO students \(name, age, email\)`).
		WithArgs(student.Name, student.Age, student.Email).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	require.True(t, apperrors.IsUniqueViolation(r.Create(ctx, student)))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepository_GetByID(t *testing.T) {
	mock := newMockPool(t)
	defer mock.Close()
	r := NewStudentRepository(mock)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT id, name, age, email, created_at`).
		WithArgs(int64(5)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "age", "email", "created_at"}).
			AddRow(int64(5), "Ada", 21, "ada@example.com", time.Now()))
	student, err := r.GetByID(ctx, 5)
	require.NoError(t, err)
	require.Equal(t, "Ada", student.Name)

	mock.ExpectQuery(`SELECT id, name, age, email, created_at`).
		WithArgs(int64(99)).
		WillReturnError(pgx.ErrNoRows)
	_, err = r.GetByID(ctx, 99)
	require.ErrorIs(t, err, pgx.ErrNoRows)

	require.NoError(t, mock.ExpectationsWereMet())
}
