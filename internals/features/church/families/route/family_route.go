package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sepcam_backend/internals/constants"
	"sepcam_backend/internals/features/church/families/controller"
	authmw "sepcam_backend/internals/middlewares/auth"
)

func FamilyAdminRoutes(admin fiber.Router, db *gorm.DB) {
	fc := controller.NewFamilyController(db)

	families := admin.Group("/families")
	families.Get("/", fc.ListFamilies)
	families.Get("/:id", fc.GetFamily)

	wide := families.Group("",
		authmw.OnlyLevels(constants.LevelErrorAdmin("family management"), constants.AssemblyWideLevels...))
	wide.Post("/", fc.CreateFamily)
	wide.Put("/:id", fc.UpdateFamily)
	wide.Delete("/:id", fc.DeleteFamily)
}
