package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/voyage-hq/voyage-api/internal/repository"
	"github.com/voyage-hq/voyage-api/internal/service"
	"github.com/voyage-hq/voyage-api/internal/utils"
)

// FacultyHandler wires the instructor listing, dashboard and grading history
// endpoints.
type FacultyHandler struct {
	service service.FacultyService
	logger  zerolog.Logger
}

// NewFacultyHandler constructs the handler.
func NewFacultyHandler(service service.FacultyService, logger zerolog.Logger) *FacultyHandler {
	return &FacultyHandler{
		service: service,
		logger:  logger.With().Str("component", "faculty_handler").Logger(),
	}
}

// Register attaches faculty endpoints to the router group.
func (h *FacultyHandler) Register(router fiber.Router) {
	router.Get("/", h.list)
	router.Get("/:id/dashboard", h.dashboard)
	router.Get("/:id/content", h.content)
	router.Get("/:id/graded", h.graded)
	router.Get("/:id/graded/count", h.gradedCount)
}

func (h *FacultyHandler) list(c *fiber.Ctx) error {
	faculty, err := h.service.List(c.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list faculty")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list faculty")
	}
	return utils.SendSuccess(c, "faculty listed", faculty)
}

func (h *FacultyHandler) dashboard(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid identifier")
	}

	dashboard, err := h.service.Dashboard(c.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrFacultyNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "faculty not found")
		}
		h.logger.Error().Err(err).Uint("faculty_id", id).Msg("failed to build faculty dashboard")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to build faculty dashboard")
	}
	return utils.SendSuccess(c, "faculty dashboard", dashboard)
}

func (h *FacultyHandler) content(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid identifier")
	}

	programID, err := parseQueryUint(c, "program_id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid program_id")
	}
	courseID, err := parseQueryUint(c, "course_id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid course_id")
	}

	content, err := h.service.Content(c.Context(), id, repository.FacultyContentFilter{
		ProgramID: programID,
		CourseID:  courseID,
	})
	if err != nil {
		if errors.Is(err, service.ErrFacultyNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "faculty not found")
		}
		h.logger.Error().Err(err).Uint("faculty_id", id).Msg("failed to list faculty content")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list faculty content")
	}
	return utils.SendSuccess(c, "faculty content listed", content)
}

func (h *FacultyHandler) graded(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid identifier")
	}

	submissions, err := h.service.GradedSubmissions(c.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrFacultyNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "faculty not found")
		}
		h.logger.Error().Err(err).Uint("faculty_id", id).Msg("failed to list graded submissions")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list graded submissions")
	}
	return utils.SendSuccess(c, "graded submissions listed", submissions)
}

func (h *FacultyHandler) gradedCount(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid identifier")
	}

	assignmentID, err := parseQueryUint(c, "assignment_id")
	if err != nil || assignmentID == nil {
		return utils.SendError(c, fiber.StatusBadRequest, "assignment_id is required")
	}

	count, err := h.service.CountGraded(c.Context(), id, *assignmentID)
	if err != nil {
		if errors.Is(err, service.ErrFacultyNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "faculty not found")
		}
		h.logger.Error().Err(err).Uint("faculty_id", id).Msg("failed to count graded submissions")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to count graded submissions")
	}
	return utils.SendSuccess(c, "graded submission count", fiber.Map{"count": count})
}
