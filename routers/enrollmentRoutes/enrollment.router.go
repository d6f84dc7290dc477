package enrollmentRoutes

import (
	controllers "eduapi/controllers/enrollmentControllers"
	"eduapi/middleware"
	validators "eduapi/validators/enrollmentValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupEnrollmentRoutes(app *fiber.App) {
	enrollmentGroup := app.Group("/api/enrollments")

	enrollmentGroup.Get("/", controllers.GetAllEnrollments)
	// Registered before /:id so "user"/"course" are not parsed as ids
	enrollmentGroup.Get("/user/:userId", controllers.GetEnrollmentsByUser)
	enrollmentGroup.Get("/course/:courseId", controllers.GetEnrollmentsByCourse)
	enrollmentGroup.Get("/:id", controllers.GetEnrollmentById)
	enrollmentGroup.Post("/", middleware.RequireAuthenticated, validators.CreateEnrollment(), controllers.CreateEnrollment)
	enrollmentGroup.Put("/:id", middleware.RequireAuthenticated, validators.UpdateEnrollment(), controllers.UpdateEnrollment)
	enrollmentGroup.Delete("/:id", controllers.DeleteEnrollment)
}
