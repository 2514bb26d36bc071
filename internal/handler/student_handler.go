package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/voyage-hq/voyage-api/internal/repository"
	"github.com/voyage-hq/voyage-api/internal/service"
	"github.com/voyage-hq/voyage-api/internal/utils"
)

// StudentHandler wires the learner listing, dashboard, assignment view and
// submission endpoints.
type StudentHandler struct {
	service service.StudentService
	logger  zerolog.Logger
}

// NewStudentHandler constructs the handler.
func NewStudentHandler(service service.StudentService, logger zerolog.Logger) *StudentHandler {
	return &StudentHandler{
		service: service,
		logger:  logger.With().Str("component", "student_handler").Logger(),
	}
}

// Register attaches student endpoints to the router group.
func (h *StudentHandler) Register(router fiber.Router) {
	router.Get("/", h.list)
	router.Get("/:id/dashboard", h.dashboard)
	router.Get("/:id/assignments", h.assignments)
	router.Get("/:id/submissions", h.submissions)
	router.Get("/:id/average", h.average)
}

func (h *StudentHandler) list(c *fiber.Ctx) error {
	students, err := h.service.List(c.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list students")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list students")
	}
	return utils.SendSuccess(c, "students listed", students)
}

func (h *StudentHandler) dashboard(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid identifier")
	}

	dashboard, err := h.service.Dashboard(c.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "student not found")
		}
		h.logger.Error().Err(err).Uint("student_id", id).Msg("failed to build student dashboard")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to build student dashboard")
	}

	if dashboard.CacheHit {
		c.Set("X-Cache", "HIT")
	}
	return utils.SendSuccess(c, "student dashboard", dashboard)
}

func (h *StudentHandler) assignments(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid identifier")
	}

	view, err := h.service.Assignments(c.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "student not found")
		}
		h.logger.Error().Err(err).Uint("student_id", id).Msg("failed to build student assignments view")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to build student assignments view")
	}
	return utils.SendSuccess(c, "student assignments", view)
}

func (h *StudentHandler) submissions(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid identifier")
	}

	assignmentID, err := parseQueryUint(c, "assignment_id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid assignment_id")
	}
	submitted, err := parseQueryBool(c, "submitted")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid submitted flag")
	}
	graded, err := parseQueryBool(c, "graded")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid graded flag")
	}

	filter := repository.StudentAssignmentFilter{
		AssignmentID: assignmentID,
		Submitted:    submitted,
		GradedOnly:   graded != nil && *graded,
	}

	submissions, err := h.service.Submissions(c.Context(), id, filter)
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "student not found")
		}
		h.logger.Error().Err(err).Uint("student_id", id).Msg("failed to list student submissions")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list student submissions")
	}
	return utils.SendSuccess(c, "student submissions listed", submissions)
}

func (h *StudentHandler) average(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid identifier")
	}

	average, err := h.service.AverageGrade(c.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStudentNotFound):
			return utils.SendError(c, fiber.StatusNotFound, "student not found")
		case errors.Is(err, service.ErrNoRecords):
			return utils.SendError(c, fiber.StatusUnprocessableEntity, "no submission records for this student")
		case errors.Is(err, service.ErrNoGrades):
			return utils.SendError(c, fiber.StatusUnprocessableEntity, "no grades recorded for this student")
		default:
			h.logger.Error().Err(err).Uint("student_id", id).Msg("failed to compute student average")
			return utils.SendError(c, fiber.StatusInternalServerError, "failed to compute student average")
		}
	}
	return utils.SendSuccess(c, "student average", fiber.Map{"average_grade": average})
}
