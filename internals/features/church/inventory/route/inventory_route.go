package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sepcam_backend/internals/constants"
	"sepcam_backend/internals/features/church/inventory/controller"
	authmw "sepcam_backend/internals/middlewares/auth"
)

func InventoryAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ic := controller.NewInventoryController(db)

	inventory := admin.Group("/inventory")
	inventory.Get("/", ic.ListInventory)
	inventory.Get("/stats", ic.InventoryStats)
	inventory.Get("/:id", ic.GetInventory)

	wide := inventory.Group("",
		authmw.OnlyLevels(constants.LevelErrorAdmin("inventory management"), constants.AssemblyWideLevels...))
	wide.Post("/", ic.CreateInventory)
	wide.Put("/:id", ic.UpdateInventory)
	wide.Delete("/:id", ic.DeleteInventory)
}
