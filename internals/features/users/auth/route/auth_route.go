package route

import (
	"github.com/gofiber/fiber/v2"

	"absensiku_backend/internals/features/users/auth/controller"
	"absensiku_backend/internals/middlewares"
)

func AuthRoutes(app *fiber.App) {
	authCtrl := controller.NewAuthController()

	auth := app.Group("/api/auth")
	auth.Post("/token", middlewares.TokenRateLimiter(), authCtrl.IssueToken)
}
