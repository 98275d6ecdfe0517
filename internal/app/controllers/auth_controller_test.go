package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushq/registrar/internal/app/models"
	"github.com/campushq/registrar/internal/pkg/apperrors"
)

type stubAuthService struct {
	registerErr error
	loginSess   *models.Session
	loginUser   *models.User
	loginErr    error
	forgotErr   error
	resetErr    error
	profileErr  error
}

func (s *stubAuthService) Register(ctx context.Context, fullName, email, password, confirmPassword string) error {
	return s.registerErr
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*models.Session, *models.User, error) {
	return s.loginSess, s.loginUser, s.loginErr
}

func (s *stubAuthService) Logout(ctx context.Context, sessionID uuid.UUID) error {
	return nil
}

func (s *stubAuthService) ForgotPassword(ctx context.Context, email string) (string, error) {
	return "", s.forgotErr
}

func (s *stubAuthService) ResetPassword(ctx context.Context, token, password, confirmPassword string) error {
	return s.resetErr
}

func (s *stubAuthService) UpdateProfile(ctx context.Context, userID int64, fullName, email string) error {
	return s.profileErr
}

func newAuthRouter(svc *stubAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := NewAuthController(svc, "registrar_session", 24*time.Hour, zerolog.Nop())
	router := gin.New()
	router.POST("/", ctrl.Login)
	router.POST("/register/", ctrl.Register)
	router.POST("/forgot-password/", ctrl.ForgotPassword)
	return router
}

func postForm(router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	router.ServeHTTP(w, req)
	return w
}

func TestLogin_InvalidCredentialsRedirectsBack(t *testing.T) {
	router := newAuthRouter(&stubAuthService{loginErr: apperrors.ErrInvalidCredentials})

	w := postForm(router, "/", url.Values{
		"email":    {"jane@example.com"},
		"password": {"wrong"},
	})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestLogin_SetsSessionCookieAndRedirects(t *testing.T) {
	session := &models.Session{ID: uuid.New(), UserID: 1, ExpiresAt: time.Now().Add(24 * time.Hour)}
	router := newAuthRouter(&stubAuthService{loginSess: session, loginUser: &models.User{ID: 1}})

	w := postForm(router, "/", url.Values{
		"email":    {"jane@example.com"},
		"password": {"correct"},
	})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/dashboard/", w.Header().Get("Location"))

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	var found bool
	for _, cookie := range cookies {
		if cookie.Name == "registrar_session" {
			found = true
			assert.Equal(t, session.ID.String(), cookie.Value)
			assert.True(t, cookie.HttpOnly)
		}
	}
	assert.True(t, found)
}

func TestRegister_SuccessLandsOnLogin(t *testing.T) {
	router := newAuthRouter(&stubAuthService{})

	w := postForm(router, "/register/", url.Values{
		"full_name":        {"Jane Doe"},
		"email":            {"jane@example.com"},
		"password":         {"secret"},
		"confirm_password": {"secret"},
	})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestRegister_DuplicateStaysOnForm(t *testing.T) {
	router := newAuthRouter(&stubAuthService{registerErr: apperrors.ErrAccountExists})

	w := postForm(router, "/register/", url.Values{
		"full_name":        {"Jane Doe"},
		"email":            {"jane@example.com"},
		"password":         {"secret"},
		"confirm_password": {"secret"},
	})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/register/", w.Header().Get("Location"))
}

func TestForgotPassword_SameOutcomeEitherWay(t *testing.T) {
	// Known and unknown accounts produce the same redirect so the form
	// cannot be used to probe for registered emails.
	for _, svc := range []*stubAuthService{
		{},
		{forgotErr: apperrors.ErrUserNotFound},
	} {
		router := newAuthRouter(svc)

		w := postForm(router, "/forgot-password/", url.Values{
			"email": {"anyone@example.com"},
		})

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))
	}
}
