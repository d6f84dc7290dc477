package main

import (
	"eduapi/config"
	authControllers "eduapi/controllers/auth"
	"eduapi/database"
	"eduapi/middleware"
	authRoutes "eduapi/routers/authRoutes"
	courseRoutes "eduapi/routers/courseRoutes"
	enrollmentRoutes "eduapi/routers/enrollmentRoutes"
	lessonRoutes "eduapi/routers/lessonRoutes"
	userRoutes "eduapi/routers/userRoutes"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()
	middleware.InitSessionStore()
	authControllers.InitProvider()

	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Resolve request identity once, before any guard runs
	app.Use(middleware.Authenticate)

	app.Get("/", home)

	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	lessonRoutes.SetupLessonRoutes(app)
	enrollmentRoutes.SetupEnrollmentRoutes(app)

	app.Use(notFound)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}

func home(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Welcome to EduAPI - E-Learning Platform API",
		"version": "2.0.0",
		"authentication": fiber.Map{
			"login":  "/auth/google",
			"logout": "/auth/logout",
			"status": "/auth/status",
		},
		"endpoints": fiber.Map{
			"users":       "/api/users",
			"courses":     "/api/courses",
			"lessons":     "/api/lessons",
			"enrollments": "/api/enrollments",
		},
	})
}

// notFound is the catch-all for unmatched paths.
func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"success": false,
		"message": "Route not found",
		"availableEndpoints": fiber.Map{
			"authentication": "/auth/google",
			"users":          "/api/users",
			"courses":        "/api/courses",
			"lessons":        "/api/lessons",
			"enrollments":    "/api/enrollments",
		},
	})
}

// errorHandler normalizes anything thrown by a handler into the standard
// error shape. Raw detail is attached only outside production.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		message = fiberErr.Message
	}

	body := fiber.Map{
		"success": false,
		"message": message,
	}
	if config.AppConfig.IsDevelopment() {
		body["error"] = err.Error()
	}
	return c.Status(code).JSON(body)
}
