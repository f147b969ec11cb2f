package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/student-registry/internal/domain"
	"github.com/spec-kit/student-registry/internal/events"
	"github.com/spec-kit/student-registry/internal/repository"
	apperrors "github.com/spec-kit/student-registry/pkg/util"
)

// RegistryService coordinates student, course and enrollment workflows.
type RegistryService struct {
	students    repository.StudentRepository
	courses     repository.CourseRepository
	enrollments repository.EnrollmentRepository
	cache       CourseCache
	dispatcher  events.Dispatcher
}

// RegistryDependencies bundles repositories for the registry service.
type RegistryDependencies struct {
	StudentRepo    repository.StudentRepository
	CourseRepo     repository.CourseRepository
	EnrollmentRepo repository.EnrollmentRepository
	CourseCache    CourseCache
	Dispatcher     events.Dispatcher
}

// NewRegistryService constructs the service.
func NewRegistryService(deps RegistryDependencies) *RegistryService {
	return &RegistryService{
		students:    deps.StudentRepo,
		courses:     deps.CourseRepo,
		enrollments: deps.EnrollmentRepo,
		cache:       deps.CourseCache,
		dispatcher:  deps.Dispatcher,
	}
}

// CreateStudent registers a new student.
func (s *RegistryService) CreateStudent(ctx context.Context, name string, age int, email string) (*domain.Student, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" {
		return nil, apperrors.NewValidationError("name and email required", nil)
	}
	if age <= 0 {
		return nil, apperrors.NewValidationError("age must be positive", nil)
	}

	student := &domain.Student{Name: name, Age: age, Email: email}
	if err := s.students.Create(ctx, student); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflict("student email already exists", map[string]any{"email": email})
		}
		return nil, err
	}

	s.publish(ctx, events.EventStudentCreated, events.StudentCreatedPayload{
		StudentID: student.ID,
		Name:      student.Name,
	})
	return student, nil
}

// GetStudent fetches a student by ID.
func (s *RegistryService) GetStudent(ctx context.Context, id int64) (*domain.Student, error) {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("student", map[string]any{"id": id})
		}
		return nil, err
	}
	return student, nil
}

// CreateCourse adds a new course.
func (s *RegistryService) CreateCourse(ctx context.Context, title, description string) (*domain.Course, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, apperrors.NewValidationError("title required", nil)
	}

	course := &domain.Course{Title: title, Description: description}
	if err := s.courses.Create(ctx, course); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflict("course title already exists", map[string]any{"title": title})
		}
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(ctx, course)
	}
	s.publish(ctx, events.EventCourseCreated, events.CourseCreatedPayload{
		CourseID: course.ID,
		Title:    course.Title,
	})
	return course, nil
}

// GetCourse fetches a course, serving from cache when possible.
func (s *RegistryService) GetCourse(ctx context.Context, id int64) (*domain.Course, error) {
	if s.cache != nil {
		if course, ok := s.cache.Get(ctx, id); ok {
			return course, nil
		}
	}

	course, err := s.courses.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("course", map[string]any{"id": id})
		}
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(ctx, course)
	}
	return course, nil
}

// Enroll links a student to a course. Both must exist and the pair must be new.
func (s *RegistryService) Enroll(ctx context.Context, studentID, courseID int64) (*domain.Enrollment, error) {
	if _, err := s.GetStudent(ctx, studentID); err != nil {
		return nil, err
	}
	if _, err := s.GetCourse(ctx, courseID); err != nil {
		return nil, err
	}

	exists, err := s.enrollments.Exists(ctx, studentID, courseID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.NewConflict("student already enrolled in this course", nil)
	}

	enrollment := &domain.Enrollment{StudentID: studentID, CourseID: courseID}
	if err := s.enrollments.Create(ctx, enrollment); err != nil {
		// Lost the race with a concurrent enrollment of the same pair.
		if apperrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflict("student already enrolled in this course", nil)
		}
		return nil, err
	}

	s.publish(ctx, events.EventEnrollmentCreated, events.EnrollmentCreatedPayload{
		EnrollmentID: enrollment.ID,
		StudentID:    enrollment.StudentID,
		CourseID:     enrollment.CourseID,
	})
	return enrollment, nil
}

// ListStudentCourses returns the IDs of courses the student is enrolled in.
func (s *RegistryService) ListStudentCourses(ctx context.Context, studentID int64) ([]int64, error) {
	if _, err := s.GetStudent(ctx, studentID); err != nil {
		return nil, err
	}
	return s.enrollments.ListCourseIDsByStudent(ctx, studentID)
}

func (s *RegistryService) publish(ctx context.Context, eventType events.EventType, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
