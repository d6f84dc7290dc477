package authController

import (
	"eduapi/config"
	"eduapi/database"
	"eduapi/middleware"
	"eduapi/models"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const oauthStateKey = "oauth_state"

const oauthUnavailableMessage = "Google OAuth is not configured on this server"

var provider Provider = disabledProvider{}

// InitProvider selects the identity provider from configuration. Call once
// at startup, after LoadConfig.
func InitProvider() {
	provider = NewProvider(config.AppConfig)
}

// GoogleLogin starts the OAuth code flow: random state into the session,
// redirect to the consent screen.
func GoogleLogin(c *fiber.Ctx) error {
	if !provider.Enabled() {
		return middleware.JsonResponse(c, fiber.StatusServiceUnavailable, false, oauthUnavailableMessage, nil)
	}

	sess, err := middleware.SessionStore.Get(c)
	if err != nil {
		return middleware.ServerErrorResponse(c, err)
	}

	state := uuid.NewString()
	sess.Set(oauthStateKey, state)
	if err := sess.Save(); err != nil {
		return middleware.ServerErrorResponse(c, err)
	}

	return c.Redirect(provider.AuthCodeURL(state), fiber.StatusTemporaryRedirect)
}

// GoogleCallback completes the code flow and binds the session to a User.
// Any provider failure lands on /auth/failure.
func GoogleCallback(c *fiber.Ctx) error {
	if !provider.Enabled() {
		return middleware.JsonResponse(c, fiber.StatusServiceUnavailable, false, oauthUnavailableMessage, nil)
	}

	sess, err := middleware.SessionStore.Get(c)
	if err != nil {
		return middleware.ServerErrorResponse(c, err)
	}

	state, _ := sess.Get(oauthStateKey).(string)
	sess.Delete(oauthStateKey)
	if state == "" || state != c.Query("state") {
		log.Println("OAuth callback with invalid state")
		return c.Redirect("/auth/failure", fiber.StatusTemporaryRedirect)
	}

	token, err := provider.Exchange(c.Context(), c.Query("code"))
	if err != nil {
		log.Printf("OAuth code exchange failed: %v", err)
		return c.Redirect("/auth/failure", fiber.StatusTemporaryRedirect)
	}

	profile, err := provider.FetchProfile(c.Context(), token)
	if err != nil {
		log.Printf("OAuth profile fetch failed: %v", err)
		return c.Redirect("/auth/failure", fiber.StatusTemporaryRedirect)
	}

	user, err := upsertOAuthUser(profile)
	if err != nil {
		log.Printf("OAuth user lookup failed: %v", err)
		return c.Redirect("/auth/failure", fiber.StatusTemporaryRedirect)
	}

	sess.Set(middleware.SessionUserKey, user.ID)
	if err := sess.Save(); err != nil {
		return middleware.ServerErrorResponse(c, err)
	}

	return c.Redirect("/auth/success", fiber.StatusTemporaryRedirect)
}

// upsertOAuthUser looks up the user by the provider-supplied email, touching
// last_login, or auto-provisions a student account from the profile.
func upsertOAuthUser(profile *Profile) (*models.User, error) {
	db := database.Database.Db
	email := strings.ToLower(strings.TrimSpace(profile.Email))

	var user models.User
	err := db.Where("email = ?", email).First(&user).Error
	if err == nil {
		user.LastLogin = time.Now()
		if err := db.Save(&user).Error; err != nil {
			return nil, err
		}
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	picture := profile.Picture
	if picture == "" {
		picture = models.DefaultProfilePicture
	}
	now := time.Now()
	user = models.User{
		Name:             profile.Name,
		Email:            email,
		Role:             models.RoleStudent,
		EnrolledCourses:  datatypes.JSONSlice[uint]{},
		CompletedCourses: datatypes.JSONSlice[uint]{},
		Certifications:   datatypes.JSONSlice[models.Certification]{},
		ProfilePicture:   picture,
		Bio:              "New user registered via Google OAuth",
		JoinDate:         now,
		LastLogin:        now,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// AuthSuccess reports the bound identity and issues an API token for
// non-browser clients.
func AuthSuccess(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return c.Redirect("/auth/failure", fiber.StatusTemporaryRedirect)
	}

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	if err != nil {
		return middleware.ServerErrorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Authentication successful",
		"user":    minimalProfile(user),
		"token":   token,
	})
}

func AuthFailure(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Authentication failed. Please try again.", nil)
}

// Logout terminates the session. Logging out while anonymous still succeeds.
func Logout(c *fiber.Ctx) error {
	sess, err := middleware.SessionStore.Get(c)
	if err == nil {
		if err := sess.Destroy(); err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Logout failed", nil)
		}
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged out successfully", nil)
}

// AuthStatus reports whether the request carries an identity. No guard.
func AuthStatus(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"success":       true,
			"authenticated": false,
			"message":       "Not authenticated. Visit /auth/google to login.",
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":       true,
		"authenticated": true,
		"user":          minimalProfile(user),
	})
}

func minimalProfile(user *models.User) fiber.Map {
	return fiber.Map{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
	}
}
