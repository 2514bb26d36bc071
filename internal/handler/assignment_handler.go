package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/voyage-hq/voyage-api/internal/dto"
	"github.com/voyage-hq/voyage-api/internal/service"
	"github.com/voyage-hq/voyage-api/internal/utils"
)

// AssignmentHandler wires the assignment listing, creation, detail, average
// and removal endpoints.
type AssignmentHandler struct {
	service service.AssignmentService
	logger  zerolog.Logger
}

// NewAssignmentHandler constructs the handler.
func NewAssignmentHandler(service service.AssignmentService, logger zerolog.Logger) *AssignmentHandler {
	return &AssignmentHandler{
		service: service,
		logger:  logger.With().Str("component", "assignment_handler").Logger(),
	}
}

// Register attaches assignment endpoints to the router group.
func (h *AssignmentHandler) Register(router fiber.Router) {
	router.Get("/", h.list)
	router.Post("/", h.create)
	router.Get("/:id", h.detail)
	router.Get("/:id/average", h.average)
	router.Delete("/:id", h.remove)
}

func (h *AssignmentHandler) list(c *fiber.Ctx) error {
	assignments, err := h.service.List(c.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list assignments")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list assignments")
	}
	return utils.SendSuccess(c, "assignments listed", assignments)
}

func (h *AssignmentHandler) create(c *fiber.Ctx) error {
	var payload dto.AssignmentCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	assignment, err := h.service.Create(c.Context(), payload, activityActorFromContext(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAssignmentExists):
			return utils.SendError(c, fiber.StatusConflict, "assignment already exists for this program, course and content")
		case errors.Is(err, service.ErrInvalidDueDate):
			return utils.SendFieldErrors(c, map[string]string{"due": "invalid due date"})
		case isValidationError(err):
			return utils.SendFieldErrors(c, fieldErrors(err))
		default:
			h.logger.Error().Err(err).Msg("failed to create assignment")
			return utils.SendError(c, fiber.StatusInternalServerError, "failed to create assignment")
		}
	}
	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "assignment created", assignment)
}

func (h *AssignmentHandler) detail(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid identifier")
	}

	assignment, err := h.service.Detail(c.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrAssignmentNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "assignment not found")
		}
		h.logger.Error().Err(err).Uint("assignment_id", id).Msg("failed to load assignment")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to load assignment")
	}
	return utils.SendSuccess(c, "assignment detail", assignment)
}

func (h *AssignmentHandler) average(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid identifier")
	}

	average, err := h.service.AverageGrade(c.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAssignmentNotFound):
			return utils.SendError(c, fiber.StatusNotFound, "assignment not found")
		case errors.Is(err, service.ErrNoRecords):
			return utils.SendError(c, fiber.StatusUnprocessableEntity, "no submission records for this assignment")
		case errors.Is(err, service.ErrNoGrades):
			return utils.SendError(c, fiber.StatusUnprocessableEntity, "no grades recorded for this assignment")
		default:
			h.logger.Error().Err(err).Uint("assignment_id", id).Msg("failed to compute assignment average")
			return utils.SendError(c, fiber.StatusInternalServerError, "failed to compute assignment average")
		}
	}
	return utils.SendSuccess(c, "assignment average", fiber.Map{"average_grade": average})
}

func (h *AssignmentHandler) remove(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid identifier")
	}

	if err := h.service.Delete(c.Context(), id, activityActorFromContext(c)); err != nil {
		if errors.Is(err, service.ErrAssignmentNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "assignment not found")
		}
		h.logger.Error().Err(err).Uint("assignment_id", id).Msg("failed to delete assignment")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to delete assignment")
	}
	return utils.SendSuccess(c, "assignment deleted", nil)
}
