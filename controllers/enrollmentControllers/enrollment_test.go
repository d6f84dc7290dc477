package enrollmentControllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"eduapi/config"
	"eduapi/database"
	"eduapi/middleware"
	"eduapi/models"
	enrollmentRoutes "eduapi/routers/enrollmentRoutes"

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
	enrollmentRoutes.SetupEnrollmentRoutes(app)
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

func seedUser(t *testing.T, name, email string) *models.User {
	t.Helper()
	user := models.User{Name: name, Email: email, Role: models.RoleStudent}
	require.NoError(t, database.Database.Db.Create(&user).Error)
	return &user
}

func bearerToken(t *testing.T, user *models.User) string {
	t.Helper()
	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	require.NoError(t, err)
	return "Bearer " + token
}

func seedEnrollment(t *testing.T, userID, courseID uint) *models.Enrollment {
	t.Helper()
	enrollment := models.Enrollment{
		UserID:         userID,
		CourseID:       courseID,
		EnrollmentDate: time.Now(),
		LastAccessed:   time.Now().Add(-time.Hour),
		PaymentStatus:  "pending",
	}
	require.NoError(t, database.Database.Db.Create(&enrollment).Error)
	return &enrollment
}

func TestCreateEnrollmentRequiresAuth(t *testing.T) {
	app := setupApp(t)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/enrollments", fiber.Map{
		"user_id":   1,
		"course_id": 1,
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Please authenticate to access this resource. Visit /auth/google to login.", decodeBody(t, resp)["message"])
}

func TestCreateEnrollmentDefaults(t *testing.T) {
	app := setupApp(t)
	student := seedUser(t, "Student", "student@x.com")

	req := jsonRequest(t, http.MethodPost, "/api/enrollments", fiber.Map{
		"user_id":   student.ID,
		"course_id": 7,
	})
	req.Header.Set("Authorization", bearerToken(t, student))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Enrollment created successfully", body["message"])
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "pending", data["payment_status"])
	assert.EqualValues(t, 0, data["progress_percentage"])
	assert.NotEmpty(t, data["enrollment_date"])
}

func TestCreateEnrollmentDuplicatePair(t *testing.T) {
	app := setupApp(t)
	student := seedUser(t, "Student", "student@x.com")
	token := bearerToken(t, student)

	payload := fiber.Map{"user_id": student.ID, "course_id": 7}

	req := jsonRequest(t, http.MethodPost, "/api/enrollments", payload)
	req.Header.Set("Authorization", token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	req = jsonRequest(t, http.MethodPost, "/api/enrollments", payload)
	req.Header.Set("Authorization", token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "User is already enrolled in this course", decodeBody(t, resp)["message"])

	var count int64
	database.Database.Db.Model(&models.Enrollment{}).Count(&count)
	assert.EqualValues(t, 1, count)

	// same user in another course is fine
	req = jsonRequest(t, http.MethodPost, "/api/enrollments", fiber.Map{"user_id": student.ID, "course_id": 8})
	req.Header.Set("Authorization", token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestDuplicatePairRejectedByIndex(t *testing.T) {
	setupApp(t)
	db := database.Database.Db

	require.NoError(t, db.Create(&models.Enrollment{UserID: 1, CourseID: 1}).Error)
	err := db.Create(&models.Enrollment{UserID: 1, CourseID: 1}).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestCreateEnrollmentValidationErrors(t *testing.T) {
	app := setupApp(t)
	student := seedUser(t, "Student", "student@x.com")

	req := jsonRequest(t, http.MethodPost, "/api/enrollments", fiber.Map{
		"course_id":           0,
		"progress_percentage": 150,
		"payment_status":      "iou",
	})
	req.Header.Set("Authorization", bearerToken(t, student))
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
	assert.Equal(t, []string{"user_id", "course_id", "progress_percentage", "payment_status"}, fields)
	assert.Equal(t, "User ID is required", messages["user_id"])
	assert.Equal(t, "Must be a valid course ID", messages["course_id"])
	assert.Equal(t, "Progress must be between 0 and 100", messages["progress_percentage"])
	assert.Equal(t, "Payment status must be pending, completed, or refunded", messages["payment_status"])
}

func TestUpdateEnrollmentRefreshesLastAccessed(t *testing.T) {
	app := setupApp(t)
	student := seedUser(t, "Student", "student@x.com")
	enrollment := seedEnrollment(t, student.ID, 7)
	before := enrollment.LastAccessed

	req := jsonRequest(t, http.MethodPut, "/api/enrollments/1", fiber.Map{"progress_percentage": 40})
	req.Header.Set("Authorization", bearerToken(t, student))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	data := decodeBody(t, resp)["data"].(map[string]interface{})
	assert.EqualValues(t, 40, data["progress_percentage"])

	var updated models.Enrollment
	require.NoError(t, database.Database.Db.First(&updated, enrollment.ID).Error)
	assert.True(t, updated.LastAccessed.After(before))
}

func TestGetEnrollmentsByUserAndCourse(t *testing.T) {
	app := setupApp(t)
	ann := seedUser(t, "Ann", "ann@x.com")
	bob := seedUser(t, "Bob", "bob@x.com")
	seedEnrollment(t, ann.ID, 1)
	seedEnrollment(t, ann.ID, 2)
	seedEnrollment(t, bob.ID, 1)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/enrollments/user/1", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 2, decodeBody(t, resp)["count"])

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/enrollments/course/1", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.EqualValues(t, 2, body["count"])
	first := body["data"].([]interface{})[0].(map[string]interface{})
	assert.NotNil(t, first["user"])
}

func TestGetEnrollmentByIdMalformedAndMissing(t *testing.T) {
	app := setupApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/enrollments/bad", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid enrollment ID format", decodeBody(t, resp)["message"])

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/enrollments/12", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Enrollment not found", decodeBody(t, resp)["message"])
}

func TestDeleteEnrollment(t *testing.T) {
	app := setupApp(t)
	student := seedUser(t, "Student", "student@x.com")
	enrollment := seedEnrollment(t, student.ID, 7)

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/api/enrollments/1", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	err = database.Database.Db.First(&models.Enrollment{}, enrollment.ID).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
