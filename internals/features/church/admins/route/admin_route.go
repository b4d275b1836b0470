package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sepcam_backend/internals/constants"
	"sepcam_backend/internals/features/church/admins/controller"
	authmw "sepcam_backend/internals/middlewares/auth"
)

func AdminManagementRoutes(admin fiber.Router, db *gorm.DB) {
	ac := controller.NewAdminController(db)
	dc := controller.NewDashboardController(db)

	admin.Get("/dashboard", dc.GetDashboard)

	// Only super admins manage the admin roster itself.
	admins := admin.Group("/admins",
		authmw.OnlyLevels(constants.LevelErrorSuperAdmin("admin management"), constants.SuperAdminOnly...))
	admins.Get("/", ac.ListAdmins)
	admins.Post("/", ac.CreateAdmin)
	admins.Put("/:id", ac.UpdateAdmin)
	admins.Delete("/:id", ac.DeleteAdmin)
}
