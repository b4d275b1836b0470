package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sepcam_backend/internals/constants"
	"sepcam_backend/internals/features/church/committees/controller"
	authmw "sepcam_backend/internals/middlewares/auth"
)

func CommitteeAdminRoutes(admin fiber.Router, db *gorm.DB) {
	cc := controller.NewCommitteeController(db)

	committees := admin.Group("/committees")
	committees.Get("/", cc.ListCommittees)
	committees.Get("/:id", cc.GetCommittee)

	wide := committees.Group("",
		authmw.OnlyLevels(constants.LevelErrorAdmin("committee management"), constants.AssemblyWideLevels...))
	wide.Post("/", cc.CreateCommittee)
	wide.Put("/:id", cc.UpdateCommittee)
	wide.Delete("/:id", cc.DeleteCommittee)
	wide.Post("/:id/members", cc.AddMember)
	wide.Delete("/:id/members/:memberId", cc.RemoveMember)
}
