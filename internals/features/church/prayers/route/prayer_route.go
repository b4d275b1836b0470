package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sepcam_backend/internals/features/church/prayers/controller"
)

func PrayerAdminRoutes(admin fiber.Router, db *gorm.DB) {
	pc := controller.NewPrayerController(db)

	prayers := admin.Group("/prayers")
	prayers.Get("/", pc.ListPrayers)
	prayers.Post("/", pc.CreatePrayer)
	prayers.Put("/:id/status", pc.UpdatePrayerStatus)
	prayers.Delete("/:id", pc.DeletePrayer)
}

func PrayerPublicRoutes(public fiber.Router, db *gorm.DB) {
	pc := controller.NewPrayerController(db)
	public.Get("/prayers", pc.PublicPrayers)
}
