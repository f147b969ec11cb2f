package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/student-registry/internal/domain"
	"github.com/spec-kit/student-registry/internal/events"
	"github.com/spec-kit/student-registry/internal/repository"
	apperrors "github.com/spec-kit/student-registry/pkg/util"
)

type fakeStudentRepo struct {
	byID   map[int64]*domain.Student
	nextID int64
}

var _ repository.StudentRepository = (*fakeStudentRepo)(nil)

func (f *fakeStudentRepo) Create(_ context.Context, s *domain.Student) error {
	if f.byID == nil {
		f.byID = map[int64]*domain.Student{}
	}
	for _, existing := range f.byID {
		if existing.Email == s.Email {
			return &pgconn.PgError{Code: "23505"}
		}
	}
	f.nextID++
	s.ID = f.nextID
	cpy := *s
	f.byID[s.ID] = &cpy
	return nil
}

func (f *fakeStudentRepo) GetByID(_ context.Context, id int64) (*domain.Student, error) {
	s, ok := f.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	cpy := *s
	return &cpy, nil
}

type fakeCourseRepo struct {
	byID    map[int64]*domain.Course
	nextID  int64
	getHits int
}

var _ repository.CourseRepository = (*fakeCourseRepo)(nil)

func (f *fakeCourseRepo) Create(_ context.Context, c *domain.Course) error {
	if f.byID == nil {
		f.byID = map[int64]*domain.Course{}
	}
	for _, existing := range f.byID {
		if existing.Title == c.Title {
			return &pgconn.PgError{Code: "23505"}
		}
	}
	f.nextID++
	c.ID = f.nextID
	cpy := *c
	f.byID[c.ID] = &cpy
	return nil
}

func (f *fakeCourseRepo) GetByID(_ context.Context, id int64) (*domain.Course, error) {
	f.getHits++
	c, ok := f.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	cpy := *c
	return &cpy, nil
}

type fakeEnrollmentRepo struct {
	pairs  map[[2]int64]int64
	nextID int64

	createErr error
}

var _ repository.EnrollmentRepository = (*fakeEnrollmentRepo)(nil)

func (f *fakeEnrollmentRepo) Create(_ context.Context, e *domain.Enrollment) error {
	if f.createErr != nil {
		return f.createErr
	}
	if f.pairs == nil {
		f.pairs = map[[2]int64]int64{}
	}
	key := [2]int64{e.StudentID, e.CourseID}
	if _, exists := f.pairs[key]; exists {
		return &pgconn.PgError{Code: "23505"}
	}
	f.nextID++
	e.ID = f.nextID
	f.pairs[key] = e.ID
	return nil
}

func (f *fakeEnrollmentRepo) Exists(_ context.Context, studentID, courseID int64) (bool, error) {
	_, ok := f.pairs[[2]int64{studentID, courseID}]
	return ok, nil
}

func (f *fakeEnrollmentRepo) ListCourseIDsByStudent(_ context.Context, studentID int64) ([]int64, error) {
	ids := make([]int64, 0)
	for pair := range f.pairs {
		if pair[0] == studentID {
			ids = append(ids, pair[1])
		}
	}
	return ids, nil
}

type mapCourseCache struct {
	byID map[int64]*domain.Course
}

func (m *mapCourseCache) Get(_ context.Context, id int64) (*domain.Course, bool) {
	c, ok := m.byID[id]
	return c, ok
}

func (m *mapCourseCache) Set(_ context.Context, c *domain.Course) {
	if m.byID == nil {
		m.byID = map[int64]*domain.Course{}
	}
	m.byID[c.ID] = c
}

type registryFixture struct {
	svc         *RegistryService
	students    *fakeStudentRepo
	courses     *fakeCourseRepo
	enrollments *fakeEnrollmentRepo
	cache       *mapCourseCache
	dispatcher  *captureDispatcher
}

func newRegistryFixture() *registryFixture {
	f := &registryFixture{
		students:    &fakeStudentRepo{},
		courses:     &fakeCourseRepo{},
		enrollments: &fakeEnrollmentRepo{},
		cache:       &mapCourseCache{},
		dispatcher:  &captureDispatcher{},
	}
	f.svc = NewRegistryService(RegistryDependencies{
		StudentRepo:    f.students,
		CourseRepo:     f.courses,
		EnrollmentRepo: f.enrollments,
		CourseCache:    f.cache,
		Dispatcher:     f.dispatcher,
	})
	return f
}

func requireDomainCode(t *testing.T, err error, code string) {
	t.Helper()
	var domainErr *apperrors.DomainError
	require.True(t, errors.As(err, &domainErr), "want DomainError, got %v", err)
	require.Equal(t, code, domainErr.Code)
}

func TestRegistryService_CreateStudent(t *testing.T) {
	f := newRegistryFixture()
	ctx := context.Background()

	student, err := f.svc.CreateStudent(ctx, "Ada Lovelace", 21, "ada@example.com")
	require.NoError(t, err)
	require.NotZero(t, student.ID)
	require.Len(t, f.dispatcher.byType(events.EventStudentCreated), 1)

	_, err = f.svc.CreateStudent(ctx, "Another Ada", 22, "ada@example.com")
	requireDomainCode(t, err, "CONFLICT")

	_, err = f.svc.CreateStudent(ctx, "", 21, "x@example.com")
	requireDomainCode(t, err, "VALIDATION_FAILED")

	_, err = f.svc.CreateStudent(ctx, "No Age", 0, "y@example.com")
	requireDomainCode(t, err, "VALIDATION_FAILED")
}

func TestRegistryService_GetStudent_NotFound(t *testing.T) {
	f := newRegistryFixture()

	_, err := f.svc.GetStudent(context.Background(), 42)
	requireDomainCode(t, err, "NOT_FOUND")
}

func TestRegistryService_CreateCourse_PopulatesCache(t *testing.T) {
	f := newRegistryFixture()
	ctx := context.Background()

	course, err := f.svc.CreateCourse(ctx, "Analytical Engines", "intro")
	require.NoError(t, err)

	cached, ok := f.cache.Get(ctx, course.ID)
	require.True(t, ok)
	require.Equal(t, course.Title, cached.Title)

	_, err = f.svc.CreateCourse(ctx, "Analytical Engines", "again")
	requireDomainCode(t, err, "CONFLICT")
}

func TestRegistryService_GetCourse_CacheHitSkipsRepo(t *testing.T) {
	f := newRegistryFixture()
	ctx := context.Background()

	course, err := f.svc.CreateCourse(ctx, "Analytical Engines", "intro")
	require.NoError(t, err)

	got, err := f.svc.GetCourse(ctx, course.ID)
	require.NoError(t, err)
	require.Equal(t, course.ID, got.ID)
	require.Zero(t, f.courses.getHits)

	_, err = f.svc.GetCourse(ctx, 999)
	requireDomainCode(t, err, "NOT_FOUND")
}

func TestRegistryService_Enroll(t *testing.T) {
	f := newRegistryFixture()
	ctx := context.Background()

	student, err := f.svc.CreateStudent(ctx, "Ada", 21, "ada@example.com")
	require.NoError(t, err)
	course, err := f.svc.CreateCourse(ctx, "Engines", "")
	require.NoError(t, err)

	enrollment, err := f.svc.Enroll(ctx, student.ID, course.ID)
	require.NoError(t, err)
	require.NotZero(t, enrollment.ID)
	require.Len(t, f.dispatcher.byType(events.EventEnrollmentCreated), 1)

	_, err = f.svc.Enroll(ctx, student.ID, course.ID)
	requireDomainCode(t, err, "CONFLICT")

	_, err = f.svc.Enroll(ctx, 999, course.ID)
	requireDomainCode(t, err, "NOT_FOUND")

	_, err = f.svc.Enroll(ctx, student.ID, 999)
	requireDomainCode(t, err, "NOT_FOUND")
}

func TestRegistryService_Enroll_RaceOnUnique(t *testing.T) {
	f := newRegistryFixture()
	ctx := context.Background()

	student, err := f.svc.CreateStudent(ctx, "Ada", 21, "ada@example.com")
	require.NoError(t, err)
	course, err := f.svc.CreateCourse(ctx, "Engines", "")
	require.NoError(t, err)

	// Exists said no, but the insert hits the unique constraint anyway.
	f.enrollments.createErr = &pgconn.PgError{Code: "23505"}
	_, err = f.svc.Enroll(ctx, student.ID, course.ID)
	requireDomainCode(t, err, "CONFLICT")
}

func TestRegistryService_ListStudentCourses(t *testing.T) {
	f := newRegistryFixture()
	ctx := context.Background()

	student, err := f.svc.CreateStudent(ctx, "Ada", 21, "ada@example.com")
	require.NoError(t, err)
	c1, err := f.svc.CreateCourse(ctx, "Engines", "")
	require.NoError(t, err)
	c2, err := f.svc.CreateCourse(ctx, "Punch Cards", "")
	require.NoError(t, err)

	_, err = f.svc.Enroll(ctx, student.ID, c1.ID)
	require.NoError(t, err)
	_, err = f.svc.Enroll(ctx, student.ID, c2.ID)
	require.NoError(t, err)

	ids, err := f.svc.ListStudentCourses(ctx, student.ID)
	require.NoError(t, err)
	require.ElementsMatch(t, []int64{c1.ID, c2.ID}, ids)

	_, err = f.svc.ListStudentCourses(ctx, 999)
	requireDomainCode(t, err, "NOT_FOUND")
}
