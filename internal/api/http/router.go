package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/student-registry/internal/api/http/handlers"
	"github.com/spec-kit/student-registry/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Students       *handlers.StudentsHandler
	Courses        *handlers.CoursesHandler
	Enrollments    *handlers.EnrollmentsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes. Everything below the auth group is gated
// by the bearer-token middleware.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)

	students := app.Group("/students", cfg.AuthMiddleware.Handle)
	students.Post("", cfg.Students.Create)
	students.Get("/:id", cfg.Students.Get)
	students.Get("/:id/courses", cfg.Students.ListCourses)

	courses := app.Group("/courses", cfg.AuthMiddleware.Handle)
	courses.Post("", cfg.Courses.Create)
	courses.Get("/:id", cfg.Courses.Get)

	enrollments := app.Group("/enrollments", cfg.AuthMiddleware.Handle)
	enrollments.Post("", cfg.Enrollments.Create)
}
