package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"jits_backend/internal/middleware"
	"jits_backend/internal/models"
	"jits_backend/internal/services"
	"jits_backend/internal/services/dto"
	"jits_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubAuthService - Login всегда успешен, остальное не используется
type stubAuthService struct {
	services.AuthService
}

func (stubAuthService) Login(_ context.Context, _ *gorm.DB, req *dto.LoginRequest) (*models.User, string, error) {
	user := &models.User{Name: "Asha", Email: req.Email, Role: models.UserRoleUser}
	user.ID = "user-1"
	return user, "tok", nil
}

func newAuthRouter(t *testing.T, cookie CookieSettings) *gin.Engine {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	pass := func(c *gin.Context) { c.Next() }
	h := NewAuthHandler(NewBaseHandler(validator.New("IN")), stubAuthService{}, cookie)

	r := gin.New()
	r.Use(middleware.DBMiddleware(db))
	h.RegisterRoutes(r.Group("/api"), Guards{Auth: pass, Admin: pass, RateLimit: pass})
	return r
}

func tokenCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, ck := range w.Result().Cookies() {
		if ck.Name == middleware.TokenCookieName {
			return ck
		}
	}
	require.FailNow(t, "no token cookie", w.Header().Values("Set-Cookie"))
	return nil
}

func TestAuthHandler_LogoutClearsCookieWithLoginAttributes(t *testing.T) {
	cases := []struct {
		name     string
		secure   bool
		sameSite http.SameSite
	}{
		{"production", true, http.SameSiteNoneMode},
		{"development", false, http.SameSiteLaxMode},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := newAuthRouter(t, CookieSettings{Secure: tc.secure, MaxAge: 7 * 24 * time.Hour})

			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"asha@example.com","password":"secret1"}`))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			login := tokenCookie(t, w)

			w = httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil))
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			logout := tokenCookie(t, w)

			assert.Equal(t, "tok", login.Value)
			assert.Equal(t, 7*24*3600, login.MaxAge)
			assert.Equal(t, "/", login.Path)
			assert.Equal(t, tc.sameSite, login.SameSite)
			assert.Equal(t, tc.secure, login.Secure)
			assert.True(t, login.HttpOnly)

			// Браузер удалит cookie, только если атрибуты совпадают
			assert.Empty(t, logout.Value)
			assert.Less(t, logout.MaxAge, 0)
			assert.Equal(t, login.Path, logout.Path)
			assert.Equal(t, login.Domain, logout.Domain)
			assert.Equal(t, login.SameSite, logout.SameSite)
			assert.Equal(t, login.Secure, logout.Secure)
			assert.Equal(t, login.HttpOnly, logout.HttpOnly)
		})
	}
}
