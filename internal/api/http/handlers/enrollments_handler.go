package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/student-registry/internal/api/dto"
	"github.com/spec-kit/student-registry/internal/service"
	apperrors "github.com/spec-kit/student-registry/pkg/util"
)

// EnrollmentsHandler manages enrollment endpoints.
type EnrollmentsHandler struct {
	registry *service.RegistryService
}

// NewEnrollmentsHandler constructs handler.
func NewEnrollmentsHandler(registry *service.RegistryService) *EnrollmentsHandler {
	return &EnrollmentsHandler{registry: registry}
}

// Create handles POST /enrollments.
func (h *EnrollmentsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateEnrollmentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.StudentID <= 0 || req.CourseID <= 0 {
		return apperrors.NewValidationError("student_id and course_id required", nil)
	}

	enrollment, err := h.registry.Enroll(c.Context(), req.StudentID, req.CourseID)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": dto.EnrollmentResponse{
			ID:        enrollment.ID,
			StudentID: enrollment.StudentID,
			CourseID:  enrollment.CourseID,
			Message:   "Enrollment successful",
		},
	})
}
