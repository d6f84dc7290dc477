package courseValidator

import (
	"eduapi/middleware"
	"eduapi/models"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CreateCourseRequest is the validated body for POST /api/courses.
type CreateCourseRequest struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	InstructorID  *uint    `json:"instructor_id"`
	Category      string   `json:"category"`
	Difficulty    string   `json:"difficulty"`
	DurationHours *float64 `json:"duration_hours"`
	Price         *float64 `json:"price"`
	Syllabus      []string `json:"syllabus"`
	Requirements  []string `json:"requirements"`
	ThumbnailURL  *string  `json:"thumbnail_url"`
	Status        *string  `json:"status"`
}

// UpdateCourseRequest is the validated body for PUT /api/courses/:id.
// Every field is optional; absent fields keep their stored values.
type UpdateCourseRequest struct {
	Title         *string  `json:"title"`
	Description   *string  `json:"description"`
	InstructorID  *uint    `json:"instructor_id"`
	Category      *string  `json:"category"`
	Difficulty    *string  `json:"difficulty"`
	DurationHours *float64 `json:"duration_hours"`
	Price         *float64 `json:"price"`
	Syllabus      []string `json:"syllabus"`
	Requirements  []string `json:"requirements"`
	ThumbnailURL  *string  `json:"thumbnail_url"`
	Status        *string  `json:"status"`
	Rating        *float64 `json:"rating"`
}

func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCourseRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		var errors []middleware.FieldError

		// Title
		reqData.Title = strings.TrimSpace(reqData.Title)
		if reqData.Title == "" {
			errors = append(errors, middleware.FieldError{Field: "title", Message: "Title is required"})
		} else if len(reqData.Title) < 3 || len(reqData.Title) > 100 {
			errors = append(errors, middleware.FieldError{Field: "title", Message: "Title must be between 3 and 100 characters"})
		}

		// Description
		reqData.Description = strings.TrimSpace(reqData.Description)
		if reqData.Description == "" {
			errors = append(errors, middleware.FieldError{Field: "description", Message: "Description is required"})
		} else if len(reqData.Description) < 10 || len(reqData.Description) > 2000 {
			errors = append(errors, middleware.FieldError{Field: "description", Message: "Description must be between 10 and 2000 characters"})
		}

		// Instructor (weak reference; existence is not checked here)
		if reqData.InstructorID == nil {
			errors = append(errors, middleware.FieldError{Field: "instructor_id", Message: "Instructor ID is required"})
		} else if *reqData.InstructorID == 0 {
			errors = append(errors, middleware.FieldError{Field: "instructor_id", Message: "Must be a valid instructor ID"})
		}

		// Category
		if reqData.Category == "" {
			errors = append(errors, middleware.FieldError{Field: "category", Message: "Category is required"})
		} else if !contains(models.CourseCategories, reqData.Category) {
			errors = append(errors, middleware.FieldError{Field: "category", Message: "Invalid category"})
		}

		// Difficulty
		if reqData.Difficulty == "" {
			errors = append(errors, middleware.FieldError{Field: "difficulty", Message: "Difficulty is required"})
		} else if !contains(models.CourseDifficulties, reqData.Difficulty) {
			errors = append(errors, middleware.FieldError{Field: "difficulty", Message: "Difficulty must be beginner, intermediate, or advanced"})
		}

		// Duration
		if reqData.DurationHours == nil {
			errors = append(errors, middleware.FieldError{Field: "duration_hours", Message: "Duration is required"})
		} else if *reqData.DurationHours < 0 {
			errors = append(errors, middleware.FieldError{Field: "duration_hours", Message: "Duration must be a positive number"})
		}

		// Price
		if reqData.Price == nil {
			errors = append(errors, middleware.FieldError{Field: "price", Message: "Price is required"})
		} else if *reqData.Price < 0 {
			errors = append(errors, middleware.FieldError{Field: "price", Message: "Price must be a positive number"})
		}

		// Status
		if reqData.Status != nil && !contains(models.CourseStatuses, *reqData.Status) {
			errors = append(errors, middleware.FieldError{Field: "status", Message: "Status must be draft, published, or archived"})
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateCourseRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		var errors []middleware.FieldError

		if reqData.Title != nil {
			*reqData.Title = strings.TrimSpace(*reqData.Title)
			if len(*reqData.Title) < 3 || len(*reqData.Title) > 100 {
				errors = append(errors, middleware.FieldError{Field: "title", Message: "Title must be between 3 and 100 characters"})
			}
		}

		if reqData.Description != nil {
			*reqData.Description = strings.TrimSpace(*reqData.Description)
			if len(*reqData.Description) < 10 || len(*reqData.Description) > 2000 {
				errors = append(errors, middleware.FieldError{Field: "description", Message: "Description must be between 10 and 2000 characters"})
			}
		}

		if reqData.InstructorID != nil && *reqData.InstructorID == 0 {
			errors = append(errors, middleware.FieldError{Field: "instructor_id", Message: "Must be a valid instructor ID"})
		}

		if reqData.Category != nil && !contains(models.CourseCategories, *reqData.Category) {
			errors = append(errors, middleware.FieldError{Field: "category", Message: "Invalid category"})
		}

		if reqData.Difficulty != nil && !contains(models.CourseDifficulties, *reqData.Difficulty) {
			errors = append(errors, middleware.FieldError{Field: "difficulty", Message: "Difficulty must be beginner, intermediate, or advanced"})
		}

		if reqData.DurationHours != nil && *reqData.DurationHours < 0 {
			errors = append(errors, middleware.FieldError{Field: "duration_hours", Message: "Duration must be a positive number"})
		}

		if reqData.Price != nil && *reqData.Price < 0 {
			errors = append(errors, middleware.FieldError{Field: "price", Message: "Price must be a positive number"})
		}

		if reqData.Status != nil && !contains(models.CourseStatuses, *reqData.Status) {
			errors = append(errors, middleware.FieldError{Field: "status", Message: "Status must be draft, published, or archived"})
		}

		if reqData.Rating != nil && (*reqData.Rating < 0 || *reqData.Rating > 5) {
			errors = append(errors, middleware.FieldError{Field: "rating", Message: "Rating must be between 0 and 5"})
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}
