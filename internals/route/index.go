package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adminRoute "sepcam_backend/internals/features/church/admins/route"
	assemblyRoute "sepcam_backend/internals/features/church/assemblies/route"
	cellRoute "sepcam_backend/internals/features/church/cells/route"
	committeeRoute "sepcam_backend/internals/features/church/committees/route"
	donationRoute "sepcam_backend/internals/features/church/donations/route"
	eventRoute "sepcam_backend/internals/features/church/events/route"
	familyRoute "sepcam_backend/internals/features/church/families/route"
	inventoryRoute "sepcam_backend/internals/features/church/inventory/route"
	memberRoute "sepcam_backend/internals/features/church/members/route"
	prayerRoute "sepcam_backend/internals/features/church/prayers/route"
	sermonRoute "sepcam_backend/internals/features/church/sermons/route"
	unitRoute "sepcam_backend/internals/features/church/units/route"
	authRoute "sepcam_backend/internals/features/users/auth/route"
	authmw "sepcam_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	api := app.Group("/api")

	// ===================== PUBLIC =====================
	// No auth: self-registration, the public prayer wall, sermon shelf,
	// and the payment gateway callback.
	log.Println("[INFO] Setting up PUBLIC group...")
	public := api.Group("/public")
	memberRoute.MemberPublicRoutes(public, db)
	prayerRoute.PrayerPublicRoutes(public, db)
	sermonRoute.SermonPublicRoutes(public, db)

	sermonRoute.SermonRoutes(api, db)
	donationRoute.DonationWebhookRoutes(api, db)

	// ===================== ADMIN =====================
	// JWT + admin profile loaded once; each feature narrows further with
	// level checks where needed.
	log.Println("[INFO] Setting up ADMIN group...")
	admin := api.Group("/a",
		authmw.AuthMiddleware(db),
		authmw.LoadAdminProfile(db),
	)

	log.Println("[INFO] Mounting church routes...")
	assemblyRoute.AssemblyAdminRoutes(admin, db)
	cellRoute.CellAdminRoutes(admin, db)
	unitRoute.UnitAdminRoutes(admin, db)
	familyRoute.FamilyAdminRoutes(admin, db)
	memberRoute.MemberAdminRoutes(admin, db)
	adminRoute.AdminManagementRoutes(admin, db)
	committeeRoute.CommitteeAdminRoutes(admin, db)
	inventoryRoute.InventoryAdminRoutes(admin, db)
	eventRoute.EventAdminRoutes(admin, db)
	donationRoute.DonationAdminRoutes(admin, db)
	prayerRoute.PrayerAdminRoutes(admin, db)
}
