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
	"github.com/gofiber/utils"

	"absensiku_backend/internals/configs"
	database "absensiku_backend/internals/databases"
	journalmodel "absensiku_backend/internals/features/attendance/model"
	journalservice "absensiku_backend/internals/features/attendance/service"
	"absensiku_backend/internals/ledger"
	middlewares "absensiku_backend/internals/middlewares"
	routes "absensiku_backend/internals/route"
)

func main() {
	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ProxyHeader:           fiber.HeaderXForwardedFor,
	})

	// ⚙️ middleware dasar + performa
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault})) // gzip
	app.Use(etag.New())                                                  // 304 caching

	// 🔎 Request-ID + timing (observability ringan)
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
		dur := time.Since(start)
		log.Printf("[REQ] id=%s %s %s status=%d dur=%s", id, c.Method(), c.OriginalURL(), c.Response().StatusCode(), dur)
		return err
	})

	middlewares.SetupMiddlewares(app)

	// 📒 Ledger in-memory: satu-satunya state otoritatif.
	var authz ledger.Authorizer = ledger.OpenPolicy{}
	if configs.AuthMode == "owner" {
		authz = ledger.OwnerPolicy{Owner: configs.OwnerName}
		log.Printf("🔐 Mode owner aktif, owner=%s", configs.OwnerName)
	} else {
		log.Println("🔓 Mode open (self-registration) aktif")
	}
	ledgerState := ledger.New(authz)

	// 🔌 DB opsional: hanya untuk jurnal tamper-evident.
	var journal *journalservice.JournalService
	if database.Enabled() {
		database.ConnectDB()
		database.TunePool()
		database.Migrate(&journalmodel.LedgerJournalModel{})
		journal = journalservice.New(database.DB)
	} else {
		journal = journalservice.New(nil)
		log.Println("⚠️ DB tidak dikonfigurasi, jurnal nonaktif (ledger tetap jalan in-memory)")
	}

	// ✅ Routes
	routes.BaseRoutes(app)
	routes.SetupRoutes(app, ledgerState, journal)

	// 🔒 Keep-Alive & timeout koneksi server
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	// Start server non-blocking
	go func() {
		log.Printf("✅ Listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown + tutup pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if database.DB != nil {
		if sqlDB, err := database.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
}
