package routes

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"

	databases "absensiku_backend/internals/databases"
)

func BaseRoutes(app *fiber.App) {
	if startTime.IsZero() {
		startTime = time.Now()
	}

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Absensiku ledger API siap 🚀")
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		serverStatus := "OK"
		httpStatus := fiber.StatusOK

		dbStatus := "Journal disabled"
		if databases.DB != nil {
			dbStatus = "Connected"
			sqlDB, err := databases.DB.DB()
			if err != nil || sqlDB.Ping() != nil {
				dbStatus = "Database connection error"
				serverStatus = "DEGRADED" // ledger in-memory tetap jalan
			}
		}

		uptime := time.Since(startTime).Seconds()

		return c.Status(httpStatus).JSON(fiber.Map{
			"status":         serverStatus,
			"journal_db":     dbStatus,
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(uptime),
			"environment":    os.Getenv("RAILWAY_ENVIRONMENT"),
		})
	})
}
