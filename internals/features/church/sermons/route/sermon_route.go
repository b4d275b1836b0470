package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sepcam_backend/internals/features/church/sermons/controller"
	authmw "sepcam_backend/internals/middlewares/auth"
)

// SermonRoutes mounts the sermon API under /api/sermons. Only the /public
// shelf is open; everything else needs a signed-in user, and mutations
// additionally load the caller's admin profile. The profile loader is
// attached per route, not as a group Use: a Use on this prefix would also
// catch the detail route and lock plain users out of it.
func SermonRoutes(api fiber.Router, db *gorm.DB) {
	sc := controller.NewSermonController(db)

	sermons := api.Group("/sermons")
	sermons.Get("/public", sc.PublicSermons)

	authed := sermons.Group("", authmw.AuthMiddleware(db))
	authed.Get("/", sc.ListSermons)
	authed.Get("/recent", sc.RecentSermons)

	adminLoaded := authmw.LoadAdminProfile(db)
	authed.Post("/", adminLoaded, sc.CreateSermon)
	authed.Put("/:id", adminLoaded, sc.UpdateSermon)
	authed.Delete("/:id", adminLoaded, sc.DeleteSermon)

	// Keep the wildcard detail route last so /public and /recent win.
	authed.Get("/:id", sc.GetSermon)
}

// SermonPublicRoutes exposes the public shelf under /api/public as well.
func SermonPublicRoutes(public fiber.Router, db *gorm.DB) {
	sc := controller.NewSermonController(db)
	public.Get("/sermons", sc.PublicSermons)
}
