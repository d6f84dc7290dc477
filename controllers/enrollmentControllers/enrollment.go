package enrollmentControllers

import (
	"eduapi/database"
	"eduapi/middleware"
	"eduapi/models"
	"eduapi/validators/enrollmentValidator"
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func GetAllEnrollments(c *fiber.Ctx) error {
	var enrollments []models.Enrollment
	err := database.Database.Db.
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "email")
		}).
		Preload("Course", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "title", "category", "price")
		}).
		Find(&enrollments).Error
	if err != nil {
		return middleware.ServerErrorResponse(c, err)
	}

	return middleware.ListResponse(c, len(enrollments), enrollments)
}

func GetEnrollmentById(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid enrollment ID format", nil)
	}

	var enrollment models.Enrollment
	err = database.Database.Db.
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "email", "role")
		}).
		Preload("Course", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "title", "category", "instructor_id")
		}).
		First(&enrollment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found", nil)
		}
		return middleware.ServerErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "", enrollment)
}

func GetEnrollmentsByUser(c *fiber.Ctx) error {
	userID, err := strconv.ParseUint(c.Params("userId"), 10, 64)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user ID format", nil)
	}

	var enrollments []models.Enrollment
	err = database.Database.Db.
		Where("user_id = ?", userID).
		Preload("Course", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "title", "category", "difficulty", "duration_hours")
		}).
		Find(&enrollments).Error
	if err != nil {
		return middleware.ServerErrorResponse(c, err)
	}

	return middleware.ListResponse(c, len(enrollments), enrollments)
}

func GetEnrollmentsByCourse(c *fiber.Ctx) error {
	courseID, err := strconv.ParseUint(c.Params("courseId"), 10, 64)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course ID format", nil)
	}

	var enrollments []models.Enrollment
	err = database.Database.Db.
		Where("course_id = ?", courseID).
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "email", "role")
		}).
		Find(&enrollments).Error
	if err != nil {
		return middleware.ServerErrorResponse(c, err)
	}

	return middleware.ListResponse(c, len(enrollments), enrollments)
}

func CreateEnrollment(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedEnrollment").(*enrollmentValidator.CreateEnrollmentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Pre-check; the composite unique index is the actual guarantee.
	err := db.Where("user_id = ? AND course_id = ?", *reqData.UserID, *reqData.CourseID).
		First(&models.Enrollment{}).Error
	if err == nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "User is already enrolled in this course", nil)
	}

	now := time.Now()
	enrollment := models.Enrollment{
		UserID:           *reqData.UserID,
		CourseID:         *reqData.CourseID,
		EnrollmentDate:   now,
		CompletedLessons: datatypes.JSONSlice[uint]{},
		LastAccessed:     now,
		PaymentStatus:    "pending",
	}
	if reqData.ProgressPercentage != nil {
		enrollment.ProgressPercentage = *reqData.ProgressPercentage
	}
	if reqData.Grade != nil {
		enrollment.Grade = reqData.Grade
	}
	if reqData.PaymentStatus != nil {
		enrollment.PaymentStatus = *reqData.PaymentStatus
	}
	if reqData.Notes != nil {
		enrollment.Notes = *reqData.Notes
	}

	if err := db.Create(&enrollment).Error; err != nil {
		// Lost the race against a concurrent enrollment of the same pair.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "User is already enrolled in this course", nil)
		}
		return middleware.ServerErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enrollment created successfully", enrollment)
}

func UpdateEnrollment(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid enrollment ID format", nil)
	}

	reqData, ok := c.Locals("validatedEnrollmentUpdate").(*enrollmentValidator.UpdateEnrollmentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var enrollment models.Enrollment
	if err := db.First(&enrollment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found", nil)
		}
		return middleware.ServerErrorResponse(c, err)
	}

	if reqData.ProgressPercentage != nil {
		enrollment.ProgressPercentage = *reqData.ProgressPercentage
	}
	if reqData.CompletedLessons != nil {
		enrollment.CompletedLessons = datatypes.JSONSlice[uint](reqData.CompletedLessons)
	}
	if reqData.CompletionDate != nil {
		enrollment.CompletionDate = reqData.CompletionDate
	}
	if reqData.Grade != nil {
		enrollment.Grade = reqData.Grade
	}
	if reqData.CertificateIssued != nil {
		enrollment.CertificateIssued = *reqData.CertificateIssued
	}
	if reqData.PaymentStatus != nil {
		enrollment.PaymentStatus = *reqData.PaymentStatus
	}
	if reqData.Notes != nil {
		enrollment.Notes = *reqData.Notes
	}

	// Every update counts as activity, whatever fields it touched.
	enrollment.LastAccessed = time.Now()

	if err := db.Save(&enrollment).Error; err != nil {
		return middleware.ServerErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment updated successfully", enrollment)
}

func DeleteEnrollment(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid enrollment ID format", nil)
	}

	db := database.Database.Db

	var enrollment models.Enrollment
	if err := db.First(&enrollment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found", nil)
		}
		return middleware.ServerErrorResponse(c, err)
	}

	if err := db.Delete(&enrollment).Error; err != nil {
		return middleware.ServerErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment deleted successfully", fiber.Map{})
}
