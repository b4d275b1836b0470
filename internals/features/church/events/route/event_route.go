package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sepcam_backend/internals/features/church/events/controller"
)

func EventAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ec := controller.NewEventController(db)

	events := admin.Group("/events")
	events.Get("/", ec.ListEvents)
	events.Post("/", ec.CreateEvent)
	events.Get("/:id", ec.GetEvent)
	events.Put("/:id", ec.UpdateEvent)
	events.Delete("/:id", ec.DeleteEvent)
	events.Get("/:id/attendance", ec.ListAttendance)
	events.Post("/:id/attendance", ec.RecordAttendance)
}
