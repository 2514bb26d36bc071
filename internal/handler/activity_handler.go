package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/voyage-hq/voyage-api/internal/service"
	"github.com/voyage-hq/voyage-api/internal/utils"
)

// ActivityHandler exposes the recent audit trail for admins.
type ActivityHandler struct {
	service service.ActivityService
	logger  zerolog.Logger
}

// NewActivityHandler constructs the handler.
func NewActivityHandler(service service.ActivityService, logger zerolog.Logger) *ActivityHandler {
	return &ActivityHandler{
		service: service,
		logger:  logger.With().Str("component", "activity_handler").Logger(),
	}
}

// Register attaches activity endpoints to the router group.
func (h *ActivityHandler) Register(router fiber.Router) {
	router.Get("/", h.recent)
}

func (h *ActivityHandler) recent(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 0)

	entries, err := h.service.Recent(c.Context(), limit)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list recent activity")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list recent activity")
	}
	return utils.SendSuccess(c, "recent activity", entries)
}
