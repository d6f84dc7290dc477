package middleware

import (
	"eduapi/models"

	"github.com/gofiber/fiber/v2"
)

const unauthenticatedMessage = "Please authenticate to access this resource. Visit /auth/google to login."

// RequireAuthenticated passes any request with a bound identity.
func RequireAuthenticated(c *fiber.Ctx) error {
	if CurrentUser(c) == nil {
		return JsonResponse(c, fiber.StatusUnauthorized, false, unauthenticatedMessage, nil)
	}
	return c.Next()
}

// RequireInstructorOrAdmin passes authenticated instructors and admins.
// Unauthenticated requests get 401; authenticated requests with the wrong
// role get 403. The distinction is deliberate.
func RequireInstructorOrAdmin(c *fiber.Ctx) error {
	user := CurrentUser(c)
	if user == nil {
		return JsonResponse(c, fiber.StatusUnauthorized, false, unauthenticatedMessage, nil)
	}
	if user.Role != models.RoleInstructor && user.Role != models.RoleAdmin {
		return JsonResponse(c, fiber.StatusForbidden, false, "Access denied. Instructor or admin role required.", nil)
	}
	return c.Next()
}

// RequireAdmin passes authenticated admins only.
func RequireAdmin(c *fiber.Ctx) error {
	user := CurrentUser(c)
	if user == nil {
		return JsonResponse(c, fiber.StatusUnauthorized, false, unauthenticatedMessage, nil)
	}
	if user.Role != models.RoleAdmin {
		return JsonResponse(c, fiber.StatusForbidden, false, "Access denied. Admin role required.", nil)
	}
	return c.Next()
}
