package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/utils"

	"sepcam_backend/internals/configs"
	database "sepcam_backend/internals/databases"
	donationService "sepcam_backend/internals/features/church/donations/service"
	memberService "sepcam_backend/internals/features/church/members/service"
	scheduler "sepcam_backend/internals/features/users/auth/scheduler"
	middlewares "sepcam_backend/internals/middlewares"
	routes "sepcam_backend/internals/route"
)

func main() {
	configs.LoadEnv()

	// Subcommand: import the membership rolls from a CSV file, then exit.
	//   sepcam_backend import-members <csv_file>
	if len(os.Args) > 1 && os.Args[1] == "import-members" {
		runImport(os.Args[2:])
		return
	}

	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ProxyHeader:           fiber.HeaderXForwardedFor,
	})

	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())

	// Request-ID + timing
	app.Use(func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = utils.UUID()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)
		start := time.Now()
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		c.SetUserContext(ctx)
		err := c.Next()
		log.Printf("[REQ] id=%s %s %s status=%d dur=%s", id, c.Method(), c.OriginalURL(), c.Response().StatusCode(), time.Since(start))
		return err
	})

	middlewares.SetupMiddlewares(app)

	database.ConnectDB()
	database.TunePool()
	database.WarmUpQueries()

	scheduler.StartBlacklistCleanupScheduler(database.DB)

	donationService.InitMidtrans(configs.GetEnv("MIDTRANS_SERVER_KEY"))

	routes.SetupRoutes(app, database.DB)

	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	go func() {
		log.Printf("✅ Listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if sqlDB, err := database.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func runImport(args []string) {
	if len(args) < 1 {
		log.Fatal("usage: sepcam_backend import-members <csv_file>")
	}
	csvPath := args[0]

	db := configs.InitImporterDB()
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}()

	log.Printf("[INFO] Starting import from %s...", csvPath)
	importer := memberService.NewMemberImporter(db)
	result, err := importer.ImportFromCSV(csvPath)
	if err != nil {
		log.Fatalf("❌ Import failed: %v", err)
	}

	log.Printf("✅ Import completed! created=%d updated=%d skipped=%d",
		result.Created, result.Updated, result.Skipped)
}
