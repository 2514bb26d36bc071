package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/voyage-hq/voyage-api/internal/config"
	"github.com/voyage-hq/voyage-api/internal/handler"
	"github.com/voyage-hq/voyage-api/internal/middleware"
	"github.com/voyage-hq/voyage-api/internal/models"
	"github.com/voyage-hq/voyage-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	FacultyHandler    *handler.FacultyHandler
	ProgramHandler    *handler.ProgramHandler
	CourseHandler     *handler.CourseHandler
	ContentHandler    *handler.ContentHandler
	AssignmentHandler *handler.AssignmentHandler
	StudentHandler    *handler.StudentHandler
	GradingHandler    *handler.GradingHandler
	ActivityHandler   *handler.ActivityHandler
	SeedHandler       *handler.SeedHandler
	JWTMiddleware     fiber.Handler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))
	api.Get("/metrics", observability.MetricsHandler())

	jwtMiddleware := deps.JWTMiddleware
	if jwtMiddleware == nil {
		jwtMiddleware = func(c *fiber.Ctx) error { return c.Next() }
	}

	if deps.FacultyHandler != nil {
		deps.FacultyHandler.Register(api.Group("/faculty", jwtMiddleware))
	}
	if deps.ProgramHandler != nil {
		deps.ProgramHandler.Register(api.Group("/programs", jwtMiddleware))
	}
	if deps.CourseHandler != nil {
		deps.CourseHandler.Register(api.Group("/courses", jwtMiddleware))
	}
	if deps.ContentHandler != nil {
		deps.ContentHandler.Register(api.Group("/content", jwtMiddleware))
	}
	if deps.AssignmentHandler != nil {
		deps.AssignmentHandler.Register(api.Group("/assignments", jwtMiddleware))
	}
	if deps.StudentHandler != nil {
		deps.StudentHandler.Register(api.Group("/students", jwtMiddleware))
	}

	// Submitting is a student action; grading requires the faculty role.
	if deps.GradingHandler != nil {
		submissions := api.Group("/submissions", jwtMiddleware)
		grading := api.Group("/submissions", jwtMiddleware,
			middleware.RequireRole(models.ActorRoleFaculty, models.ActorRoleAdmin))
		deps.GradingHandler.Register(submissions, grading)
	}

	if deps.ActivityHandler != nil {
		deps.ActivityHandler.Register(api.Group("/activity", jwtMiddleware,
			middleware.RequireRole(models.ActorRoleAdmin)))
	}
	if deps.SeedHandler != nil {
		deps.SeedHandler.Register(api.Group("/admin"))
	}
}
