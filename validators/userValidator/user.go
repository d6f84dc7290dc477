package userValidator

import (
	"eduapi/middleware"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// CreateUserRequest is the validated body for POST /api/users.
type CreateUserRequest struct {
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Role           *string `json:"role"`
	Bio            *string `json:"bio"`
	ProfilePicture *string `json:"profile_picture"`
}

// UpdateUserRequest is the validated body for PUT /api/users/:id.
// Every field is optional; absent fields keep their stored values.
type UpdateUserRequest struct {
	Name           *string `json:"name"`
	Email          *string `json:"email"`
	Role           *string `json:"role"`
	Bio            *string `json:"bio"`
	ProfilePicture *string `json:"profile_picture"`
}

var userRoles = []string{"student", "instructor", "admin"}

func CreateUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateUserRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		var errors []middleware.FieldError

		// Name
		reqData.Name = strings.TrimSpace(reqData.Name)
		if reqData.Name == "" {
			errors = append(errors, middleware.FieldError{Field: "name", Message: "Name is required"})
		} else if len(reqData.Name) < 2 || len(reqData.Name) > 100 {
			errors = append(errors, middleware.FieldError{Field: "name", Message: "Name must be between 2 and 100 characters"})
		}

		// Email (normalized to lowercase before any uniqueness comparison)
		reqData.Email = strings.ToLower(strings.TrimSpace(reqData.Email))
		if reqData.Email == "" {
			errors = append(errors, middleware.FieldError{Field: "email", Message: "Email is required"})
		} else if validate.Var(reqData.Email, "email") != nil {
			errors = append(errors, middleware.FieldError{Field: "email", Message: "Must be a valid email address"})
		}

		errors = append(errors, validateOptionalUserFields(reqData.Role, reqData.Bio, reqData.ProfilePicture)...)

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUser", reqData)
		return c.Next()
	}
}

func UpdateUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateUserRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		var errors []middleware.FieldError

		if reqData.Name != nil {
			*reqData.Name = strings.TrimSpace(*reqData.Name)
			if len(*reqData.Name) < 2 || len(*reqData.Name) > 100 {
				errors = append(errors, middleware.FieldError{Field: "name", Message: "Name must be between 2 and 100 characters"})
			}
		}

		if reqData.Email != nil {
			*reqData.Email = strings.ToLower(strings.TrimSpace(*reqData.Email))
			if validate.Var(*reqData.Email, "email") != nil {
				errors = append(errors, middleware.FieldError{Field: "email", Message: "Must be a valid email address"})
			}
		}

		errors = append(errors, validateOptionalUserFields(reqData.Role, reqData.Bio, reqData.ProfilePicture)...)

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUserUpdate", reqData)
		return c.Next()
	}
}

func validateOptionalUserFields(role, bio, profilePicture *string) []middleware.FieldError {
	var errors []middleware.FieldError

	if role != nil && !contains(userRoles, *role) {
		errors = append(errors, middleware.FieldError{Field: "role", Message: "Role must be student, instructor, or admin"})
	}
	if bio != nil && len(*bio) > 500 {
		errors = append(errors, middleware.FieldError{Field: "bio", Message: "Bio cannot exceed 500 characters"})
	}
	if profilePicture != nil && validate.Var(*profilePicture, "url") != nil {
		errors = append(errors, middleware.FieldError{Field: "profile_picture", Message: "Profile picture must be a valid URL"})
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
