package enrollmentValidator

import (
	"eduapi/middleware"
	"eduapi/models"
	"time"

	"github.com/gofiber/fiber/v2"
)

// CreateEnrollmentRequest is the validated body for POST /api/enrollments.
type CreateEnrollmentRequest struct {
	UserID             *uint    `json:"user_id"`
	CourseID           *uint    `json:"course_id"`
	ProgressPercentage *float64 `json:"progress_percentage"`
	Grade              *float64 `json:"grade"`
	PaymentStatus      *string  `json:"payment_status"`
	Notes              *string  `json:"notes"`
}

// UpdateEnrollmentRequest is the validated body for PUT /api/enrollments/:id.
// The (user, course) pair is fixed at enrollment time and cannot be changed.
type UpdateEnrollmentRequest struct {
	ProgressPercentage *float64   `json:"progress_percentage"`
	CompletedLessons   []uint     `json:"completed_lessons"`
	CompletionDate     *time.Time `json:"completion_date"`
	Grade              *float64   `json:"grade"`
	CertificateIssued  *bool      `json:"certificate_issued"`
	PaymentStatus      *string    `json:"payment_status"`
	Notes              *string    `json:"notes"`
}

func CreateEnrollment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateEnrollmentRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		var errors []middleware.FieldError

		if reqData.UserID == nil {
			errors = append(errors, middleware.FieldError{Field: "user_id", Message: "User ID is required"})
		} else if *reqData.UserID == 0 {
			errors = append(errors, middleware.FieldError{Field: "user_id", Message: "Must be a valid user ID"})
		}

		if reqData.CourseID == nil {
			errors = append(errors, middleware.FieldError{Field: "course_id", Message: "Course ID is required"})
		} else if *reqData.CourseID == 0 {
			errors = append(errors, middleware.FieldError{Field: "course_id", Message: "Must be a valid course ID"})
		}

		errors = append(errors, validateOptionalEnrollmentFields(reqData.ProgressPercentage, reqData.Grade, reqData.PaymentStatus, reqData.Notes)...)

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedEnrollment", reqData)
		return c.Next()
	}
}

func UpdateEnrollment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateEnrollmentRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := validateOptionalEnrollmentFields(reqData.ProgressPercentage, reqData.Grade, reqData.PaymentStatus, reqData.Notes)

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedEnrollmentUpdate", reqData)
		return c.Next()
	}
}

func validateOptionalEnrollmentFields(progress, grade *float64, paymentStatus, notes *string) []middleware.FieldError {
	var errors []middleware.FieldError

	if progress != nil && (*progress < 0 || *progress > 100) {
		errors = append(errors, middleware.FieldError{Field: "progress_percentage", Message: "Progress must be between 0 and 100"})
	}
	if grade != nil && (*grade < 0 || *grade > 100) {
		errors = append(errors, middleware.FieldError{Field: "grade", Message: "Grade must be between 0 and 100"})
	}
	if paymentStatus != nil && !contains(models.PaymentStatuses, *paymentStatus) {
		errors = append(errors, middleware.FieldError{Field: "payment_status", Message: "Payment status must be pending, completed, or refunded"})
	}
	if notes != nil && len(*notes) > 500 {
		errors = append(errors, middleware.FieldError{Field: "notes", Message: "Notes cannot exceed 500 characters"})
	}

	return errors
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}
