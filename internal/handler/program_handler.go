package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/voyage-hq/voyage-api/internal/service"
	"github.com/voyage-hq/voyage-api/internal/utils"
)

// ProgramHandler wires the cohort listing, detail and removal endpoints.
type ProgramHandler struct {
	service service.ProgramService
	logger  zerolog.Logger
}

// NewProgramHandler constructs the handler.
func NewProgramHandler(service service.ProgramService, logger zerolog.Logger) *ProgramHandler {
	return &ProgramHandler{
		service: service,
		logger:  logger.With().Str("component", "program_handler").Logger(),
	}
}

// Register attaches program endpoints to the router group.
func (h *ProgramHandler) Register(router fiber.Router) {
	router.Get("/", h.list)
	router.Get("/:id", h.detail)
	router.Delete("/:id", h.remove)
}

func (h *ProgramHandler) list(c *fiber.Ctx) error {
	programs, err := h.service.List(c.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list programs")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list programs")
	}
	return utils.SendSuccess(c, "programs listed", programs)
}

func (h *ProgramHandler) detail(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid identifier")
	}

	program, err := h.service.Detail(c.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrProgramNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "program not found")
		}
		h.logger.Error().Err(err).Uint("program_id", id).Msg("failed to load program")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to load program")
	}
	return utils.SendSuccess(c, "program detail", program)
}

func (h *ProgramHandler) remove(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid identifier")
	}

	if err := h.service.Delete(c.Context(), id, activityActorFromContext(c)); err != nil {
		if errors.Is(err, service.ErrProgramNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "program not found")
		}
		h.logger.Error().Err(err).Uint("program_id", id).Msg("failed to delete program")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to delete program")
	}
	return utils.SendSuccess(c, "program deleted", nil)
}
