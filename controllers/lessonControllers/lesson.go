package lessonControllers

import (
	"eduapi/database"
	"eduapi/middleware"
	"eduapi/models"
	"eduapi/validators/lessonValidator"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func GetAllLessons(c *fiber.Ctx) error {
	var lessons []models.Lesson
	err := database.Database.Db.
		Preload("Course", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "title", "category")
		}).
		Find(&lessons).Error
	if err != nil {
		return middleware.ServerErrorResponse(c, err)
	}

	return middleware.ListResponse(c, len(lessons), lessons)
}

func GetLessonById(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid lesson ID format", nil)
	}

	var lesson models.Lesson
	err = database.Database.Db.
		Preload("Course", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "title", "category", "instructor_id")
		}).
		First(&lesson, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found", nil)
		}
		return middleware.ServerErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "", lesson)
}

func GetLessonsByCourse(c *fiber.Ctx) error {
	courseID, err := strconv.ParseUint(c.Params("courseId"), 10, 64)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course ID format", nil)
	}

	var lessons []models.Lesson
	err = database.Database.Db.
		Where("course_id = ?", courseID).
		Order("sort_order asc").
		Find(&lessons).Error
	if err != nil {
		return middleware.ServerErrorResponse(c, err)
	}

	return middleware.ListResponse(c, len(lessons), lessons)
}

func CreateLesson(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLesson").(*lessonValidator.CreateLessonRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	lesson := models.Lesson{
		CourseID:        *reqData.CourseID,
		Title:           reqData.Title,
		Description:     reqData.Description,
		Content:         reqData.Content,
		DurationMinutes: *reqData.DurationMinutes,
		Order:           *reqData.Order,
		Resources:       datatypes.JSONSlice[models.LessonResource](reqData.Resources),
		QuizQuestions:   datatypes.JSONSlice[models.QuizQuestion](reqData.QuizQuestions),
	}
	if reqData.VideoURL != nil {
		lesson.VideoURL = *reqData.VideoURL
	}

	if err := database.Database.Db.Create(&lesson).Error; err != nil {
		return middleware.ServerErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lesson created successfully", lesson)
}

func UpdateLesson(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid lesson ID format", nil)
	}

	reqData, ok := c.Locals("validatedLessonUpdate").(*lessonValidator.UpdateLessonRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var lesson models.Lesson
	if err := db.First(&lesson, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found", nil)
		}
		return middleware.ServerErrorResponse(c, err)
	}

	if reqData.CourseID != nil {
		lesson.CourseID = *reqData.CourseID
	}
	if reqData.Title != nil {
		lesson.Title = *reqData.Title
	}
	if reqData.Description != nil {
		lesson.Description = *reqData.Description
	}
	if reqData.Content != nil {
		lesson.Content = *reqData.Content
	}
	if reqData.VideoURL != nil {
		lesson.VideoURL = *reqData.VideoURL
	}
	if reqData.DurationMinutes != nil {
		lesson.DurationMinutes = *reqData.DurationMinutes
	}
	if reqData.Order != nil {
		lesson.Order = *reqData.Order
	}
	if reqData.Resources != nil {
		lesson.Resources = datatypes.JSONSlice[models.LessonResource](reqData.Resources)
	}
	if reqData.QuizQuestions != nil {
		lesson.QuizQuestions = datatypes.JSONSlice[models.QuizQuestion](reqData.QuizQuestions)
	}

	if err := db.Save(&lesson).Error; err != nil {
		return middleware.ServerErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson updated successfully", lesson)
}

func DeleteLesson(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid lesson ID format", nil)
	}

	db := database.Database.Db

	var lesson models.Lesson
	if err := db.First(&lesson, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found", nil)
		}
		return middleware.ServerErrorResponse(c, err)
	}

	if err := db.Delete(&lesson).Error; err != nil {
		return middleware.ServerErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson deleted successfully", fiber.Map{})
}
