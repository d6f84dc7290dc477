package middleware

import (
	"eduapi/database"
	"eduapi/models"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// SessionStore backs OAuth login sessions. In-memory storage by default;
// sessions do not survive a restart.
var SessionStore *session.Store

// SessionUserKey is the session key binding a session to a User record.
const SessionUserKey = "user_id"

const currentUserKey = "currentUser"

// InitSessionStore creates the session store. Must be called before the app
// serves requests.
func InitSessionStore() {
	SessionStore = session.New(session.Config{
		Expiration:     24 * time.Hour,
		KeyLookup:      "cookie:eduapi_session",
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})
}

// Authenticate resolves the request identity once per request and stores it
// request-scoped in Locals. A session cookie takes precedence; an
// Authorization bearer token is accepted for API clients. Anonymous requests
// pass through with no identity bound; guards decide whether that is allowed.
func Authenticate(c *fiber.Ctx) error {
	if user := userFromSession(c); user != nil {
		c.Locals(currentUserKey, user)
		return c.Next()
	}
	if user := userFromBearerToken(c); user != nil {
		c.Locals(currentUserKey, user)
	}
	return c.Next()
}

// CurrentUser returns the identity bound to this request, or nil when the
// request is unauthenticated.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(currentUserKey).(*models.User)
	return user
}

func userFromSession(c *fiber.Ctx) *models.User {
	sess, err := SessionStore.Get(c)
	if err != nil {
		return nil
	}
	userID, ok := sess.Get(SessionUserKey).(uint)
	if !ok {
		return nil
	}
	return loadUser(userID)
}

func userFromBearerToken(c *fiber.Ctx) *models.User {
	authHeader := c.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return nil
	}
	userID, err := ParseJWT(authHeader[len("Bearer "):])
	if err != nil {
		return nil
	}
	return loadUser(userID)
}

func loadUser(userID uint) *models.User {
	var user models.User
	if err := database.Database.Db.First(&user, userID).Error; err != nil {
		return nil
	}
	return &user
}
