package lessonRoutes

import (
	controllers "eduapi/controllers/lessonControllers"
	"eduapi/middleware"
	validators "eduapi/validators/lessonValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupLessonRoutes(app *fiber.App) {
	lessonGroup := app.Group("/api/lessons")

	lessonGroup.Get("/", controllers.GetAllLessons)
	// Registered before /:id so "course" is not parsed as a lesson id
	lessonGroup.Get("/course/:courseId", controllers.GetLessonsByCourse)
	lessonGroup.Get("/:id", controllers.GetLessonById)
	lessonGroup.Post("/", middleware.RequireInstructorOrAdmin, validators.CreateLesson(), controllers.CreateLesson)
	lessonGroup.Put("/:id", middleware.RequireInstructorOrAdmin, validators.UpdateLesson(), controllers.UpdateLesson)
	lessonGroup.Delete("/:id", middleware.RequireInstructorOrAdmin, controllers.DeleteLesson)
}
