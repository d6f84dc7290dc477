package courseControllers

import (
	"eduapi/database"
	"eduapi/middleware"
	"eduapi/models"
	"eduapi/validators/courseValidator"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func GetAllCourses(c *fiber.Ctx) error {
	var courses []models.Course
	err := database.Database.Db.
		Preload("Instructor", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "email")
		}).
		Find(&courses).Error
	if err != nil {
		return middleware.ServerErrorResponse(c, err)
	}

	return middleware.ListResponse(c, len(courses), courses)
}

func GetCourseById(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course ID format", nil)
	}

	var course models.Course
	err = database.Database.Db.
		Preload("Instructor", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "email", "bio", "profile_picture")
		}).
		First(&course, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found", nil)
		}
		return middleware.ServerErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "", course)
}

func CreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CreateCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course := models.Course{
		Title:         reqData.Title,
		Description:   reqData.Description,
		InstructorID:  *reqData.InstructorID,
		Category:      reqData.Category,
		Difficulty:    reqData.Difficulty,
		DurationHours: *reqData.DurationHours,
		Price:         *reqData.Price,
		Syllabus:      datatypes.JSONSlice[string](reqData.Syllabus),
		Requirements:  datatypes.JSONSlice[string](reqData.Requirements),
		ThumbnailURL:  models.DefaultCourseThumbnail,
		Status:        "draft",
	}
	if reqData.ThumbnailURL != nil {
		course.ThumbnailURL = *reqData.ThumbnailURL
	}
	if reqData.Status != nil {
		course.Status = *reqData.Status
	}

	if err := database.Database.Db.Create(&course).Error; err != nil {
		return middleware.ServerErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully", course)
}

func UpdateCourse(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course ID format", nil)
	}

	reqData, ok := c.Locals("validatedCourseUpdate").(*courseValidator.UpdateCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.First(&course, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found", nil)
		}
		return middleware.ServerErrorResponse(c, err)
	}

	if reqData.Title != nil {
		course.Title = *reqData.Title
	}
	if reqData.Description != nil {
		course.Description = *reqData.Description
	}
	if reqData.InstructorID != nil {
		course.InstructorID = *reqData.InstructorID
	}
	if reqData.Category != nil {
		course.Category = *reqData.Category
	}
	if reqData.Difficulty != nil {
		course.Difficulty = *reqData.Difficulty
	}
	if reqData.DurationHours != nil {
		course.DurationHours = *reqData.DurationHours
	}
	if reqData.Price != nil {
		course.Price = *reqData.Price
	}
	if reqData.Syllabus != nil {
		course.Syllabus = datatypes.JSONSlice[string](reqData.Syllabus)
	}
	if reqData.Requirements != nil {
		course.Requirements = datatypes.JSONSlice[string](reqData.Requirements)
	}
	if reqData.ThumbnailURL != nil {
		course.ThumbnailURL = *reqData.ThumbnailURL
	}
	if reqData.Status != nil {
		course.Status = *reqData.Status
	}
	if reqData.Rating != nil {
		course.Rating = *reqData.Rating
	}

	if err := db.Save(&course).Error; err != nil {
		return middleware.ServerErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully", course)
}

func DeleteCourse(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course ID format", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.First(&course, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found", nil)
		}
		return middleware.ServerErrorResponse(c, err)
	}

	// No cascade: lessons and enrollments referencing this course remain.
	if err := db.Delete(&course).Error; err != nil {
		return middleware.ServerErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully", fiber.Map{})
}
