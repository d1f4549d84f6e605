package handler

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/infoemi/campus-api/internal/utils"
)

// HealthCheck reports service liveness and database connectivity.
func HealthCheck(appName string, db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		status := fiber.Map{
			"app":      appName,
			"database": "ok",
		}

		if db != nil {
			sqlDB, err := db.DB()
			if err == nil {
				err = sqlDB.PingContext(c.UserContext())
			}
			if err != nil {
				status["database"] = "unreachable"
				return utils.SendError(c, fiber.StatusServiceUnavailable, "database unreachable")
			}
		}

		return utils.SendSuccess(c, "healthy", status)
	}
}
