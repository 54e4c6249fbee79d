package middleware

import (
	"academy/backend/config"
	"academy/backend/models"
	"academy/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const adminKey = "admin"

// AdminMiddleware rejects requests without a valid admin session cookie and
// stores the authenticated admin in the request locals.
func AdminMiddleware(db *gorm.DB, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := utils.ExtractAdminIDFromSession(c, cfg)
		if err != nil {
			return utils.Unauthorized(c, "Unauthorized")
		}

		var admin models.AdminUser
		if err := db.First(&admin, userID).Error; err != nil {
			return utils.Unauthorized(c, "Unauthorized")
		}
		if admin.Role != "admin" {
			return utils.Forbidden(c, "Forbidden - Admin access required")
		}

		c.Locals(adminKey, &admin)
		return c.Next()
	}
}

// CurrentAdmin returns the admin stored by AdminMiddleware, or nil.
func CurrentAdmin(c *fiber.Ctx) *models.AdminUser {
	admin, _ := c.Locals(adminKey).(*models.AdminUser)
	return admin
}
