package middleware

import (
	"encoding/base64"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/infoemi/campus-api/internal/service"
	"github.com/infoemi/campus-api/internal/utils"
)

// AdminAuth guards the admin surface. Both bearer tokens issued by login and
// HTTP basic credentials are accepted; either way the resolved admin identity
// is bound to the request.
func AdminAuth(auth service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
		if header == "" {
			return utils.SendError(c, fiber.StatusUnauthorized, "authentication required")
		}

		scheme, value, found := strings.Cut(header, " ")
		if !found {
			return utils.SendError(c, fiber.StatusUnauthorized, "malformed authorization header")
		}

		switch strings.ToLower(scheme) {
		case "bearer":
			adminID, username, err := auth.VerifyToken(strings.TrimSpace(value))
			if err != nil {
				return utils.SendError(c, fiber.StatusUnauthorized, "invalid or expired token")
			}
			c.Locals("admin_id", adminID)
			c.Locals("admin_username", username)

		case "basic":
			decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(value))
			if err != nil {
				return utils.SendError(c, fiber.StatusUnauthorized, "malformed authorization header")
			}
			username, password, found := strings.Cut(string(decoded), ":")
			if !found {
				return utils.SendError(c, fiber.StatusUnauthorized, "malformed authorization header")
			}
			admin, err := auth.Verify(c.UserContext(), username, password)
			if err != nil {
				return utils.SendError(c, fiber.StatusUnauthorized, "invalid credentials")
			}
			c.Locals("admin_id", admin.ID)
			c.Locals("admin_username", admin.Username)

		default:
			return utils.SendError(c, fiber.StatusUnauthorized, "unsupported authorization scheme")
		}

		return c.Next()
	}
}

// AdminID returns the authenticated admin's identifier for the request.
func AdminID(c *fiber.Ctx) uint {
	if id, ok := c.Locals("admin_id").(uint); ok {
		return id
	}
	return 0
}
