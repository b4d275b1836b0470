package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sepcam_backend/internals/features/church/members/controller"
)

// MemberAdminRoutes mounts the scoped member CRUD under the admin group.
func MemberAdminRoutes(admin fiber.Router, db *gorm.DB) {
	mc := controller.NewMemberController(db)

	members := admin.Group("/members")
	members.Get("/", mc.ListMembers)
	members.Post("/", mc.CreateMember)
	members.Get("/:id", mc.GetMember)
	members.Put("/:id", mc.UpdateMember)
	members.Delete("/:id", mc.DeleteMember)
}

// MemberPublicRoutes mounts the unauthenticated self-registration endpoint.
func MemberPublicRoutes(public fiber.Router, db *gorm.DB) {
	mc := controller.NewMemberController(db)
	public.Post("/register", mc.PublicRegister)
}
