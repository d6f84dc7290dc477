package lessonValidator

import (
	"eduapi/middleware"
	"eduapi/models"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// CreateLessonRequest is the validated body for POST /api/lessons.
type CreateLessonRequest struct {
	CourseID        *uint                  `json:"course_id"`
	Title           string                 `json:"title"`
	Description     string                 `json:"description"`
	Content         string                 `json:"content"`
	VideoURL        *string                `json:"video_url"`
	DurationMinutes *int                   `json:"duration_minutes"`
	Order           *int                   `json:"order"`
	Resources       []models.LessonResource `json:"resources"`
	QuizQuestions   []models.QuizQuestion   `json:"quiz_questions"`
}

// UpdateLessonRequest is the validated body for PUT /api/lessons/:id.
// Every field is optional; absent fields keep their stored values.
type UpdateLessonRequest struct {
	CourseID        *uint                  `json:"course_id"`
	Title           *string                `json:"title"`
	Description     *string                `json:"description"`
	Content         *string                `json:"content"`
	VideoURL        *string                `json:"video_url"`
	DurationMinutes *int                   `json:"duration_minutes"`
	Order           *int                   `json:"order"`
	Resources       []models.LessonResource `json:"resources"`
	QuizQuestions   []models.QuizQuestion   `json:"quiz_questions"`
}

func CreateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateLessonRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		var errors []middleware.FieldError

		// Course reference (weak; existence is not checked)
		if reqData.CourseID == nil {
			errors = append(errors, middleware.FieldError{Field: "course_id", Message: "Course ID is required"})
		} else if *reqData.CourseID == 0 {
			errors = append(errors, middleware.FieldError{Field: "course_id", Message: "Must be a valid course ID"})
		}

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
		} else if len(reqData.Description) < 10 || len(reqData.Description) > 1000 {
			errors = append(errors, middleware.FieldError{Field: "description", Message: "Description must be between 10 and 1000 characters"})
		}

		// Content
		reqData.Content = strings.TrimSpace(reqData.Content)
		if reqData.Content == "" {
			errors = append(errors, middleware.FieldError{Field: "content", Message: "Content is required"})
		}

		// Duration
		if reqData.DurationMinutes == nil {
			errors = append(errors, middleware.FieldError{Field: "duration_minutes", Message: "Duration is required"})
		} else if *reqData.DurationMinutes < 1 {
			errors = append(errors, middleware.FieldError{Field: "duration_minutes", Message: "Duration must be at least 1 minute"})
		}

		// Order (display sequencing; not unique per course)
		if reqData.Order == nil {
			errors = append(errors, middleware.FieldError{Field: "order", Message: "Order is required"})
		} else if *reqData.Order < 1 {
			errors = append(errors, middleware.FieldError{Field: "order", Message: "Order must be at least 1"})
		}

		// Video URL
		if reqData.VideoURL != nil && validate.Var(*reqData.VideoURL, "url") != nil {
			errors = append(errors, middleware.FieldError{Field: "video_url", Message: "Must be a valid URL"})
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLesson", reqData)
		return c.Next()
	}
}

func UpdateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateLessonRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		var errors []middleware.FieldError

		if reqData.CourseID != nil && *reqData.CourseID == 0 {
			errors = append(errors, middleware.FieldError{Field: "course_id", Message: "Must be a valid course ID"})
		}

		if reqData.Title != nil {
			*reqData.Title = strings.TrimSpace(*reqData.Title)
			if len(*reqData.Title) < 3 || len(*reqData.Title) > 100 {
				errors = append(errors, middleware.FieldError{Field: "title", Message: "Title must be between 3 and 100 characters"})
			}
		}

		if reqData.Description != nil {
			*reqData.Description = strings.TrimSpace(*reqData.Description)
			if len(*reqData.Description) < 10 || len(*reqData.Description) > 1000 {
				errors = append(errors, middleware.FieldError{Field: "description", Message: "Description must be between 10 and 1000 characters"})
			}
		}

		if reqData.Content != nil {
			*reqData.Content = strings.TrimSpace(*reqData.Content)
			if *reqData.Content == "" {
				errors = append(errors, middleware.FieldError{Field: "content", Message: "Content is required"})
			}
		}

		if reqData.DurationMinutes != nil && *reqData.DurationMinutes < 1 {
			errors = append(errors, middleware.FieldError{Field: "duration_minutes", Message: "Duration must be at least 1 minute"})
		}

		if reqData.Order != nil && *reqData.Order < 1 {
			errors = append(errors, middleware.FieldError{Field: "order", Message: "Order must be at least 1"})
		}

		if reqData.VideoURL != nil && validate.Var(*reqData.VideoURL, "url") != nil {
			errors = append(errors, middleware.FieldError{Field: "video_url", Message: "Must be a valid URL"})
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLessonUpdate", reqData)
		return c.Next()
	}
}
