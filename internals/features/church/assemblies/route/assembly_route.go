package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sepcam_backend/internals/constants"
	"sepcam_backend/internals/features/church/assemblies/controller"
	authmw "sepcam_backend/internals/middlewares/auth"
)

func AssemblyAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ac := controller.NewAssemblyController(db)

	assemblies := admin.Group("/assemblies")
	assemblies.Get("/", ac.ListAssemblies)
	assemblies.Get("/:id", ac.GetAssembly)

	// Only super admins shape the assembly registry.
	superOnly := assemblies.Group("",
		authmw.OnlyLevels(constants.LevelErrorSuperAdmin("assembly management"), constants.SuperAdminOnly...))
	superOnly.Post("/", ac.CreateAssembly)
	superOnly.Put("/:id", ac.UpdateAssembly)
	superOnly.Delete("/:id", ac.DeleteAssembly)
}
