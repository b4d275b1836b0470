package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sepcam_backend/internals/constants"
	"sepcam_backend/internals/features/church/donations/controller"
	authmw "sepcam_backend/internals/middlewares/auth"
)

func DonationAdminRoutes(admin fiber.Router, db *gorm.DB) {
	dc := controller.NewDonationController(db)

	// Finance data is assembly-wide territory; Cell admins stay out.
	donations := admin.Group("/donations",
		authmw.OnlyLevels(constants.LevelErrorAdmin("donation records"), constants.AssemblyWideLevels...))
	donations.Get("/", dc.ListDonations)
	donations.Get("/summary", dc.DonationSummary)
	donations.Post("/", dc.CreateDonation)
	donations.Delete("/:id", dc.DeleteDonation)
}

// DonationWebhookRoutes mounts the Midtrans callback outside of auth.
func DonationWebhookRoutes(api fiber.Router, db *gorm.DB) {
	dc := controller.NewDonationController(db)
	api.Post("/donations/notification", dc.HandlePaymentNotification)
}
