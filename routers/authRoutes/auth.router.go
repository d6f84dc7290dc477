package authRoutes

import (
	authControllers "eduapi/controllers/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Get("/google", authControllers.GoogleLogin)
	authGroup.Get("/google/callback", authControllers.GoogleCallback)
	authGroup.Get("/success", authControllers.AuthSuccess)
	authGroup.Get("/failure", authControllers.AuthFailure)
	authGroup.Get("/logout", authControllers.Logout)
	authGroup.Get("/status", authControllers.AuthStatus)
}
