package lessonControllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"eduapi/config"
	"eduapi/database"
	"eduapi/middleware"
	"eduapi/models"
	lessonRoutes "eduapi/routers/lessonRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()
	config.LoadConfig()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		TranslateError:                           true,
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Course{}, &models.Lesson{}, &models.Enrollment{}))
	database.Database = database.DbInstance{Db: db}

	middleware.InitSessionStore()

	app := fiber.New()
	app.Use(middleware.Authenticate)
	lessonRoutes.SetupLessonRoutes(app)
	return app
}

func jsonRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func instructorToken(t *testing.T) string {
	t.Helper()
	instructor := models.User{Name: "Teacher", Email: "teacher@x.com", Role: models.RoleInstructor}
	require.NoError(t, database.Database.Db.Create(&instructor).Error)
	token, err := middleware.GenerateJWT(instructor.ID, instructor.Name, instructor.Role, instructor.Email)
	require.NoError(t, err)
	return "Bearer " + token
}

func seedLesson(t *testing.T, courseID uint, title string, order int) *models.Lesson {
	t.Helper()
	lesson := models.Lesson{
		CourseID:        courseID,
		Title:           title,
		Description:     "A lesson on the topic at hand.",
		Content:         "lesson content",
		DurationMinutes: 10,
		Order:           order,
	}
	require.NoError(t, database.Database.Db.Create(&lesson).Error)
	return &lesson
}

func TestGetLessonByIdMalformedId(t *testing.T) {
	app := setupApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/lessons/abc", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid lesson ID format", decodeBody(t, resp)["message"])
}

func TestGetLessonByIdNotFound(t *testing.T) {
	app := setupApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/lessons/7", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Lesson not found", decodeBody(t, resp)["message"])
}

func TestGetLessonsByCourseOrdering(t *testing.T) {
	app := setupApp(t)

	// inserted out of display order
	seedLesson(t, 1, "Third", 3)
	seedLesson(t, 1, "First", 1)
	seedLesson(t, 1, "Second", 2)
	seedLesson(t, 2, "Other course", 1)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/lessons/course/1", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.EqualValues(t, 3, body["count"])

	data := body["data"].([]interface{})
	var titles []string
	for _, item := range data {
		titles = append(titles, item.(map[string]interface{})["title"].(string))
	}
	assert.Equal(t, []string{"First", "Second", "Third"}, titles)
}

func TestGetLessonsByCourseMalformedId(t *testing.T) {
	app := setupApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/lessons/course/xyz", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid course ID format", decodeBody(t, resp)["message"])
}

func TestCreateLessonGuard(t *testing.T) {
	app := setupApp(t)

	payload := fiber.Map{
		"course_id":        1,
		"title":            "Hello World",
		"description":      "Writing your first program.",
		"content":          "package main",
		"duration_minutes": 5,
		"order":            1,
	}

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/lessons", payload))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Please authenticate to access this resource. Visit /auth/google to login.", decodeBody(t, resp)["message"])

	req := jsonRequest(t, http.MethodPost, "/api/lessons", payload)
	req.Header.Set("Authorization", instructorToken(t))
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Lesson created successfully", body["message"])
	data := body["data"].(map[string]interface{})
	assert.EqualValues(t, 1, data["order"])
}

func TestCreateLessonValidationErrors(t *testing.T) {
	app := setupApp(t)
	token := instructorToken(t)

	req := jsonRequest(t, http.MethodPost, "/api/lessons", fiber.Map{
		"title":            "Hi",
		"description":      "short",
		"duration_minutes": 0,
		"order":            0,
		"video_url":        "not a url",
	})
	req.Header.Set("Authorization", token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Validation errors", body["message"])

	errs := body["errors"].([]interface{})
	var fields []string
	messages := map[string]string{}
	for _, e := range errs {
		fe := e.(map[string]interface{})
		fields = append(fields, fe["field"].(string))
		messages[fe["field"].(string)] = fe["message"].(string)
	}
	assert.Equal(t, []string{"course_id", "title", "description", "content", "duration_minutes", "order", "video_url"}, fields)
	assert.Equal(t, "Course ID is required", messages["course_id"])
	assert.Equal(t, "Title must be between 3 and 100 characters", messages["title"])
	assert.Equal(t, "Duration must be at least 1 minute", messages["duration_minutes"])
	assert.Equal(t, "Order must be at least 1", messages["order"])
	assert.Equal(t, "Must be a valid URL", messages["video_url"])
}

func TestUpdateLessonPartialMerge(t *testing.T) {
	app := setupApp(t)
	token := instructorToken(t)
	lesson := seedLesson(t, 1, "Hello World", 1)

	req := jsonRequest(t, http.MethodPut, "/api/lessons/1", fiber.Map{"order": 5})
	req.Header.Set("Authorization", token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	data := decodeBody(t, resp)["data"].(map[string]interface{})
	assert.EqualValues(t, 5, data["order"])
	assert.Equal(t, lesson.Title, data["title"])
	assert.Equal(t, lesson.Content, data["content"])
}

func TestDeleteLesson(t *testing.T) {
	app := setupApp(t)
	token := instructorToken(t)
	lesson := seedLesson(t, 1, "Hello World", 1)

	req := httptest.NewRequest(http.MethodDelete, "/api/lessons/1", nil)
	req.Header.Set("Authorization", token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Lesson deleted successfully", decodeBody(t, resp)["message"])

	err = database.Database.Db.First(&models.Lesson{}, lesson.ID).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
