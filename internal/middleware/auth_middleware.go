package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/campushq/registrar/internal/app/models"
	"github.com/campushq/registrar/internal/app/repositories"
)

// Context keys set by the session middleware.
const (
	ContextUserKey    = "currentUser"
	ContextSessionKey = "currentSession"
)

// AuthMiddleware resolves the session cookie into an authenticated user.
type AuthMiddleware struct {
	sessionRepo repositories.SessionRepository
	userRepo    repositories.UserRepository
	cookieName  string
}

// NewAuthMiddleware creates a new AuthMiddleware.
func NewAuthMiddleware(sessionRepo repositories.SessionRepository, userRepo repositories.UserRepository, cookieName string) *AuthMiddleware {
	return &AuthMiddleware{
		sessionRepo: sessionRepo,
		userRepo:    userRepo,
		cookieName:  cookieName,
	}
}

// lookup resolves the cookie to a live session and its user. Any failure
// (missing cookie, malformed id, expired or deleted session) returns nils.
func (m *AuthMiddleware) lookup(c *gin.Context) (*models.Session, *models.User) {
	value, err := c.Cookie(m.cookieName)
	if err != nil || value == "" {
		return nil, nil
	}

	id, err := uuid.Parse(value)
	if err != nil {
		return nil, nil
	}

	session, err := m.sessionRepo.GetByID(c.Request.Context(), id)
	if err != nil || session.Expired(time.Now()) {
		return nil, nil
	}

	user, err := m.userRepo.GetByID(c.Request.Context(), session.UserID)
	if err != nil {
		return nil, nil
	}

	return session, user
}

// RequireSession guards protected pages. An absent or expired session is an
// authorization failure, answered with a redirect to the login page.
func (m *AuthMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		session, user := m.lookup(c)
		if session == nil {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}

		c.Set(ContextSessionKey, session)
		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// RedirectIfAuthenticated sends logged-in users from the login and register
// pages straight to the dashboard.
func (m *AuthMiddleware) RedirectIfAuthenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		if session, _ := m.lookup(c); session != nil {
			c.Redirect(http.StatusFound, "/dashboard/")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user set by RequireSession.
func CurrentUser(c *gin.Context) *models.User {
	if value, exists := c.Get(ContextUserKey); exists {
		if user, ok := value.(*models.User); ok {
			return user
		}
	}
	return nil
}

// CurrentSession returns the session set by RequireSession.
func CurrentSession(c *gin.Context) *models.Session {
	if value, exists := c.Get(ContextSessionKey); exists {
		if session, ok := value.(*models.Session); ok {
			return session
		}
	}
	return nil
}
