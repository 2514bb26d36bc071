package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/voyage-hq/voyage-api/internal/service"
	"github.com/voyage-hq/voyage-api/internal/utils"
)

// ContentHandler wires the teaching material listing and detail endpoints.
type ContentHandler struct {
	service service.ContentService
	logger  zerolog.Logger
}

// NewContentHandler constructs the handler.
func NewContentHandler(service service.ContentService, logger zerolog.Logger) *ContentHandler {
	return &ContentHandler{
		service: service,
		logger:  logger.With().Str("component", "content_handler").Logger(),
	}
}

// Register attaches content endpoints to the router group.
func (h *ContentHandler) Register(router fiber.Router) {
	router.Get("/", h.list)
	router.Get("/:id", h.detail)
}

func (h *ContentHandler) list(c *fiber.Ctx) error {
	content, err := h.service.List(c.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list content")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list content")
	}
	return utils.SendSuccess(c, "content listed", content)
}

func (h *ContentHandler) detail(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid identifier")
	}

	content, err := h.service.Detail(c.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrContentNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "content not found")
		}
		h.logger.Error().Err(err).Uint("content_id", id).Msg("failed to load content")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to load content")
	}
	return utils.SendSuccess(c, "content detail", content)
}
