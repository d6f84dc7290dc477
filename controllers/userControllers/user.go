package userControllers

import (
	"eduapi/database"
	"eduapi/middleware"
	"eduapi/models"
	"eduapi/validators/userValidator"
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func GetAllUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := database.Database.Db.Find(&users).Error; err != nil {
		return middleware.ServerErrorResponse(c, err)
	}

	return middleware.ListResponse(c, len(users), users)
}

func GetUserById(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user ID format", nil)
	}

	var user models.User
	if err := database.Database.Db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found", nil)
		}
		return middleware.ServerErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "", user)
}

func CreateUser(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedUser").(*userValidator.CreateUserRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Pre-check; the unique index on email is the actual guarantee.
	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "User with this email already exists", nil)
	}

	now := time.Now()
	user := models.User{
		Name:             reqData.Name,
		Email:            reqData.Email,
		Role:             models.RoleStudent,
		EnrolledCourses:  datatypes.JSONSlice[uint]{},
		CompletedCourses: datatypes.JSONSlice[uint]{},
		Certifications:   datatypes.JSONSlice[models.Certification]{},
		ProfilePicture:   models.DefaultProfilePicture,
		JoinDate:         now,
		LastLogin:        now,
	}
	if reqData.Role != nil {
		user.Role = *reqData.Role
	}
	if reqData.Bio != nil {
		user.Bio = *reqData.Bio
	}
	if reqData.ProfilePicture != nil {
		user.ProfilePicture = *reqData.ProfilePicture
	}

	if err := db.Create(&user).Error; err != nil {
		// Lost the race against a concurrent create with the same email.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "User with this email already exists", nil)
		}
		return middleware.ServerErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User created successfully", user)
}

func UpdateUser(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user ID format", nil)
	}

	reqData, ok := c.Locals("validatedUserUpdate").(*userValidator.UpdateUserRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found", nil)
		}
		return middleware.ServerErrorResponse(c, err)
	}

	// Re-check uniqueness when the email changes.
	if reqData.Email != nil && *reqData.Email != user.Email {
		if err := db.Where("email = ?", *reqData.Email).First(&models.User{}).Error; err == nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Email already in use", nil)
		}
		user.Email = *reqData.Email
	}
	if reqData.Name != nil {
		user.Name = *reqData.Name
	}
	if reqData.Role != nil {
		user.Role = *reqData.Role
	}
	if reqData.Bio != nil {
		user.Bio = *reqData.Bio
	}
	if reqData.ProfilePicture != nil {
		user.ProfilePicture = *reqData.ProfilePicture
	}

	if err := db.Save(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Email already in use", nil)
		}
		return middleware.ServerErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User updated successfully", user)
}

func DeleteUser(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user ID format", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found", nil)
		}
		return middleware.ServerErrorResponse(c, err)
	}

	// No cascade: enrollments referencing this user keep their dangling ID.
	if err := db.Delete(&user).Error; err != nil {
		return middleware.ServerErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User deleted successfully", fiber.Map{})
}
