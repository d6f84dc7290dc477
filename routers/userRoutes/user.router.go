package userRoutes

import (
	controllers "eduapi/controllers/userControllers"
	"eduapi/middleware"
	validators "eduapi/validators/userValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/api/users")

	userGroup.Get("/", controllers.GetAllUsers)
	userGroup.Get("/:id", controllers.GetUserById)
	userGroup.Post("/", validators.CreateUser(), controllers.CreateUser)
	userGroup.Put("/:id", validators.UpdateUser(), controllers.UpdateUser)
	userGroup.Delete("/:id", middleware.RequireAdmin, controllers.DeleteUser)
}
