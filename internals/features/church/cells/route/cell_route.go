package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sepcam_backend/internals/constants"
	"sepcam_backend/internals/features/church/cells/controller"
	authmw "sepcam_backend/internals/middlewares/auth"
)

func CellAdminRoutes(admin fiber.Router, db *gorm.DB) {
	cc := controller.NewCellController(db)

	cells := admin.Group("/cells")
	cells.Get("/", cc.ListCells)
	cells.Get("/:id", cc.GetCell)

	wide := cells.Group("",
		authmw.OnlyLevels(constants.LevelErrorAdmin("cell management"), constants.AssemblyWideLevels...))
	wide.Post("/", cc.CreateCell)
	wide.Put("/:id", cc.UpdateCell)
	wide.Delete("/:id", cc.DeleteCell)
}
