package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/student-registry/internal/api/dto"
	"github.com/spec-kit/student-registry/internal/domain"
	"github.com/spec-kit/student-registry/internal/service"
	apperrors "github.com/spec-kit/student-registry/pkg/util"
)

// StudentsHandler manages student endpoints.
type StudentsHandler struct {
	registry *service.RegistryService
}

// NewStudentsHandler constructs handler.
func NewStudentsHandler(registry *service.RegistryService) *StudentsHandler {
	return &StudentsHandler{registry: registry}
}

// Create handles POST /students.
func (h *StudentsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	student, err := h.registry.CreateStudent(c.Context(), req.Name, req.Age, req.Email)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": studentResponse(student)})
}

// Get handles GET /students/:id.
func (h *StudentsHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return apperrors.NewValidationError("invalid student id", nil)
	}

	student, err := h.registry.GetStudent(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": studentResponse(student)})
}

// ListCourses handles GET /students/:id/courses.
func (h *StudentsHandler) ListCourses(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return apperrors.NewValidationError("invalid student id", nil)
	}

	courseIDs, err := h.registry.ListStudentCourses(c.Context(), id)
	if err != nil {
		return err
	}
	if len(courseIDs) == 0 {
		return apperrors.NewNotFound("courses for this student", nil)
	}
	return c.JSON(fiber.Map{"data": dto.EnrolledCoursesResponse{EnrolledCourses: courseIDs}})
}

func studentResponse(student *domain.Student) dto.StudentResponse {
	return dto.StudentResponse{
		ID:    student.ID,
		Name:  student.Name,
		Age:   student.Age,
		Email: student.Email,
	}
}

func parseID(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}
