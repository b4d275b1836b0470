package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sepcam_backend/internals/constants"
	"sepcam_backend/internals/features/church/units/controller"
	authmw "sepcam_backend/internals/middlewares/auth"
)

func UnitAdminRoutes(admin fiber.Router, db *gorm.DB) {
	uc := controller.NewUnitController(db)

	units := admin.Group("/units")
	units.Get("/", uc.ListUnits)
	units.Get("/:id", uc.GetUnit)

	wide := units.Group("",
		authmw.OnlyLevels(constants.LevelErrorAdmin("unit management"), constants.AssemblyWideLevels...))
	wide.Post("/", uc.CreateUnit)
	wide.Put("/:id", uc.UpdateUnit)
	wide.Delete("/:id", uc.DeleteUnit)
}
