package courseRoutes

import (
	controllers "eduapi/controllers/courseControllers"
	"eduapi/middleware"
	validators "eduapi/validators/courseValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/api/courses")

	courseGroup.Get("/", controllers.GetAllCourses)
	courseGroup.Get("/:id", controllers.GetCourseById)
	courseGroup.Post("/", middleware.RequireInstructorOrAdmin, validators.CreateCourse(), controllers.CreateCourse)
	courseGroup.Put("/:id", middleware.RequireInstructorOrAdmin, validators.UpdateCourse(), controllers.UpdateCourse)
	courseGroup.Delete("/:id", controllers.DeleteCourse)
}
