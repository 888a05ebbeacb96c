// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	attendanceRoute "absensiku_backend/internals/features/attendance/route"
	"absensiku_backend/internals/features/attendance/service"
	authRoute "absensiku_backend/internals/features/users/auth/route"
	"absensiku_backend/internals/ledger"
	authMiddleware "absensiku_backend/internals/middlewares/auth"
)

var startTime time.Time

// SetupRoutes merangkai semua route. journal boleh nil-DB (nonaktif);
// ledger wajib.
func SetupRoutes(app *fiber.App, l *ledger.Ledger, journal *service.JournalService) {
	startTime = time.Now()

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app)

	// ===================== LEDGER API =====================
	// Token opsional: identitas caller dari JWT kalau ada, kebijakan
	// write diputuskan Authorizer di dalam ledger.
	log.Println("[INFO] Setting up AttendanceRoutes...")
	api := app.Group("/api", authMiddleware.AuthMiddleware())
	attendanceRoute.AttendanceRoutes(api, l, journal)
}
