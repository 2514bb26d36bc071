package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/voyage-hq/voyage-api/internal/utils"
)

// RequireRole ensures the authenticated caller holds one of the allowed
// roles. Grading routes require the faculty role; admin views require admin.
func RequireRole(roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		if normalized := strings.ToLower(strings.TrimSpace(role)); normalized != "" {
			allowed[normalized] = struct{}{}
		}
	}

	return func(c *fiber.Ctx) error {
		if _, ok := allowed[AccountRole(c)]; !ok {
			return utils.SendError(c, fiber.StatusForbidden, "insufficient permissions")
		}
		return c.Next()
	}
}
