// internals/middlewares/auth/admin_middleware.go
package auth

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adminModel "sepcam_backend/internals/features/church/admins/model"
	helper "sepcam_backend/internals/helpers"
)

const LocAdminProfile = "admin_profile"

// LoadAdminProfile resolves the authenticated user's admin profile and
// stashes it in Locals. Handlers pull it with GetAdminProfile and pass it
// on explicitly; nothing downstream reads ambient auth state.
func LoadAdminProfile(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := helper.GetUserIDFromToken(c)
		if err != nil {
			return err
		}

		var profile adminModel.AdminModel
		if err := db.Preload("Cell").Preload("Member").
			First(&profile, "admin_user_id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusForbidden, "No admin profile found for this account")
			}
			log.Println("[ERROR] load admin profile:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load admin profile")
		}

		c.Locals(LocAdminProfile, &profile)
		return c.Next()
	}
}

// GetAdminProfile returns the profile placed by LoadAdminProfile.
func GetAdminProfile(c *fiber.Ctx) (*adminModel.AdminModel, error) {
	p, ok := c.Locals(LocAdminProfile).(*adminModel.AdminModel)
	if !ok || p == nil {
		return nil, fiber.NewError(fiber.StatusForbidden, "No admin profile found for this account")
	}
	return p, nil
}

// OnlyLevels gates a route on the loaded profile's level.
func OnlyLevels(customMessage string, levels ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		profile, err := GetAdminProfile(c)
		if err != nil {
			return err
		}
		for _, allowed := range levels {
			if profile.AdminLevel == allowed {
				return c.Next()
			}
		}
		if customMessage == "" {
			customMessage = "Forbidden: you are not authorized to access this resource"
		}
		return helper.JsonError(c, fiber.StatusForbidden, customMessage)
	}
}
