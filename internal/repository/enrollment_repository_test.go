package repository

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/student-registry/internal/domain"
	apperrors "github.com/spec-kit/student-registry/pkg/util"
)

func TestEnrollmentRepository_Create(t *testing.T) {
	mock := newMockPool(t)
	defer mock.Close()
	r := NewEnrollmentRepository(mock)
	ctx := context.Background()

	enrollment := &domain.Enrollment{StudentID: 1, CourseID: 2}

	mock.ExpectQuery(`INSERT INTO enrollments \(student_id, course_id\)`).
		WithArgs(enrollment.StudentID, enrollment.CourseID).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(10), time.Now()))
	require.NoError(t, r.Create(ctx, enrollment))
	require.Equal(t, int64(10), enrollment.ID)

	mock.ExpectQuery(`INSERT INTO enrollments \(student_id, course_id\)`).
		WithArgs(enrollment.StudentID, enrollment.CourseID).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	err := r.Create(ctx, enrollment)
	require.True(t, apperrors.IsUniqueViolation(err))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEnrollmentRepository_Exists(t *testing.T) {
	mock := newMockPool(t)
	defer mock.Close()
	r := NewEnrollmentRepository(mock)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs(int64(1), int64(2)).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
	exists, err := r.Exists(ctx, 1, 2)
	require.NoError(t, err)
	require.True(t, exists)

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs(int64(1), int64(3)).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	exists, err = r.Exists(ctx, 1, 3)
	require.NoError(t, err)
	require.False(t, exists)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEnrollmentRepository_ListCourseIDsByStudent(t *testing.T) {
	mock := newMockPool(t)
	defer mock.Close()
	r := NewEnrollmentRepository(mock)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT course_id FROM enrollments`).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"course_id"}).AddRow(int64(2)).AddRow(int64(5)))
	ids, err := r.ListCourseIDsByStudent(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, []int64{2, 5}, ids)

	// No enrollments yields an empty, non-nil slice.
	mock.ExpectQuery(`SELECT course_id FROM enrollments`).
		WithArgs(int64(9)).
		WillReturnRows(pgxmock.NewRows([]string{"course_id"}))
	ids, err = r.ListCourseIDsByStudent(ctx, 9)
	require.NoError(t, err)
	require.NotNil(t, ids)
	require.Empty(t, ids)

	require.NoError(t, mock.ExpectationsWereMet())
}
