package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/student-registry/internal/api/dto"
	"github.com/spec-kit/student-registry/internal/domain"
	"github.com/spec-kit/student-registry/internal/service"
	apperrors "github.com/spec-kit/student-registry/pkg/util"
)

// CoursesHandler manages course endpoints.
type CoursesHandler struct {
	registry *service.RegistryService
}

// NewCoursesHandler constructs handler.
func NewCoursesHandler(registry *service.RegistryService) *CoursesHandler {
	return &CoursesHandler{registry: registry}
}

// Create handles POST /courses.
func (h *CoursesHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	course, err := h.registry.CreateCourse(c.Context(), req.Title, req.Description)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": courseResponse(course)})
}

// Get handles GET /courses/:id.
func (h *CoursesHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return apperrors.NewValidationError("invalid course id", nil)
	}

	course, err := h.registry.GetCourse(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": courseResponse(course)})
}

func courseResponse(course *domain.Course) dto.CourseResponse {
	return dto.CourseResponse{
		ID:          course.ID,
		Title:       course.Title,
		Description: course.Description,
	}
}
