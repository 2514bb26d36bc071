package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/voyage-hq/voyage-api/internal/dto"
	"github.com/voyage-hq/voyage-api/internal/service"
	"github.com/voyage-hq/voyage-api/internal/utils"
)

// GradingHandler wires the submission lifecycle endpoints.
type GradingHandler struct {
	service service.GradingService
	logger  zerolog.Logger
}

// NewGradingHandler constructs the handler.
func NewGradingHandler(service service.GradingService, logger zerolog.Logger) *GradingHandler {
	return &GradingHandler{
		service: service,
		logger:  logger.With().Str("component", "grading_handler").Logger(),
	}
}

// Register attaches grading endpoints to the router group. The grade route
// sits behind the faculty role guard; submit is open to students.
func (h *GradingHandler) Register(submissions fiber.Router, grading fiber.Router) {
	submissions.Post("/:id/submit", h.submit)
	grading.Patch("/:id/grade", h.grade)
}

func (h *GradingHandler) submit(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid identifier")
	}

	submission, err := h.service.Submit(c.Context(), id, activityActorFromContext(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSubmissionNotFound):
			return utils.SendError(c, fiber.StatusNotFound, "submission not found")
		case errors.Is(err, service.ErrAlreadySubmitted):
			return utils.SendError(c, fiber.StatusConflict, "assignment already submitted")
		default:
			h.logger.Error().Err(err).Uint("submission_id", id).Msg("failed to submit assignment")
			return utils.SendError(c, fiber.StatusInternalServerError, "failed to submit assignment")
		}
	}
	return utils.SendSuccess(c, "assignment submitted", submission)
}

func (h *GradingHandler) grade(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid identifier")
	}

	var payload dto.GradeSubmissionRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	submission, err := h.service.Grade(c.Context(), id, payload, activityActorFromContext(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSubmissionNotFound):
			return utils.SendError(c, fiber.StatusNotFound, "submission not found")
		case errors.Is(err, service.ErrNotSubmitted):
			return utils.SendError(c, fiber.StatusConflict, "assignment has not been submitted yet")
		case isValidationError(err):
			return utils.SendFieldErrors(c, fieldErrors(err))
		default:
			h.logger.Error().Err(err).Uint("submission_id", id).Msg("failed to grade submission")
			return utils.SendError(c, fiber.StatusInternalServerError, "failed to grade submission")
		}
	}
	return utils.SendSuccess(c, "submission graded", submission)
}
