package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/campushq/registrar/internal/app/models"
	"github.com/campushq/registrar/internal/pkg/apperrors"
)

const testCookie = "registrar_session"

type stubSessionRepo struct {
	mock.Mock
}

func (m *stubSessionRepo) Create(ctx context.Context, session *models.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *stubSessionRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *stubSessionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *stubSessionRepo) DeleteExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type stubUserRepo struct {
	mock.Mock
}

func (m *stubUserRepo) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *stubUserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *stubUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *stubUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *stubUserRepo) UpdateProfile(ctx context.Context, id int64, firstName, email string) error {
	args := m.Called(ctx, id, firstName, email)
	return args.Error(0)
}

func (m *stubUserRepo) UpdatePassword(ctx context.Context, id int64, hashedPassword string) error {
	args := m.Called(ctx, id, hashedPassword)
	return args.Error(0)
}

func newTestRouter(sessionRepo *stubSessionRepo, userRepo *stubUserRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	m := NewAuthMiddleware(sessionRepo, userRepo, testCookie)

	router := gin.New()
	router.GET("/dashboard/", m.RequireSession(), func(c *gin.Context) {
		user := CurrentUser(c)
		c.String(http.StatusOK, "hello %s", user.FirstName)
	})
	router.GET("/", m.RedirectIfAuthenticated(), func(c *gin.Context) {
		c.String(http.StatusOK, "login page")
	})
	return router
}

func TestRequireSession_NoCookie(t *testing.T) {
	sessionRepo := new(stubSessionRepo)
	userRepo := new(stubUserRepo)
	router := newTestRouter(sessionRepo, userRepo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard/", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestRequireSession_MalformedCookie(t *testing.T) {
	sessionRepo := new(stubSessionRepo)
	userRepo := new(stubUserRepo)
	router := newTestRouter(sessionRepo, userRepo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard/", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: "not-a-uuid"})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	sessionRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestRequireSession_ExpiredSession(t *testing.T) {
	sessionRepo := new(stubSessionRepo)
	userRepo := new(stubUserRepo)
	router := newTestRouter(sessionRepo, userRepo)

	id := uuid.New()
	sessionRepo.On("GetByID", mock.Anything, id).Return(nil, apperrors.ErrSessionNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard/", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: id.String()})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestRequireSession_ValidSession(t *testing.T) {
	sessionRepo := new(stubSessionRepo)
	userRepo := new(stubUserRepo)
	router := newTestRouter(sessionRepo, userRepo)

	id := uuid.New()
	session := &models.Session{ID: id, UserID: 7, ExpiresAt: time.Now().Add(time.Hour)}
	sessionRepo.On("GetByID", mock.Anything, id).Return(session, nil)
	userRepo.On("GetByID", mock.Anything, int64(7)).Return(&models.User{ID: 7, FirstName: "Jane"}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard/", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: id.String()})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "hello Jane", w.Body.String())
}

func TestRedirectIfAuthenticated(t *testing.T) {
	sessionRepo := new(stubSessionRepo)
	userRepo := new(stubUserRepo)
	router := newTestRouter(sessionRepo, userRepo)

	id := uuid.New()
	session := &models.Session{ID: id, UserID: 7, ExpiresAt: time.Now().Add(time.Hour)}
	sessionRepo.On("GetByID", mock.Anything, id).Return(session, nil)
	userRepo.On("GetByID", mock.Anything, int64(7)).Return(&models.User{ID: 7}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: id.String()})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/dashboard/", w.Header().Get("Location"))
}

func TestRedirectIfAuthenticated_AnonymousPassesThrough(t *testing.T) {
	sessionRepo := new(stubSessionRepo)
	userRepo := new(stubUserRepo)
	router := newTestRouter(sessionRepo, userRepo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "login page", w.Body.String())
}
