package integration_test

import (
	"encoding/json"
	"net/http"
	"regexp"
	"strings"
	"testing"

	"jits_backend/internal/config"
	"jits_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenCookie(res *http.Response) *http.Cookie {
	for _, c := range res.Cookies() {
		if c.Name == "token" {
			return c
		}
	}
	return nil
}

func TestHealth(t *testing.T) {
	ts := helpers.NewTestServer(t)

	res, body := ts.SendRequest(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, body)
}

// TestAuth_SignupLoginMeLogout - золотой путь: регистрация, вход по cookie, /me, выход
func TestAuth_SignupLoginMeLogout(t *testing.T) {
	ts := helpers.NewTestServer(t)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/auth/signup", "", map[string]string{
		"name":     "Asha",
		"email":    "Asha@Example.com",
		"password": "secret1",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
	assert.Contains(t, body, `"email":"asha@example.com"`)
	assert.Contains(t, body, `"role":"user"`)

	// повторная регистрация
	res, body = ts.SendRequest(t, http.MethodPost, "/api/auth/signup", "", map[string]string{
		"name":     "Asha",
		"email":    "asha@example.com",
		"password": "secret1",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "User already exists with this email.")

	// bcrypt не примет больше 72 байт, ответ 400, а не 500
	res, body = ts.SendRequest(t, http.MethodPost, "/api/auth/signup", "", map[string]string{
		"name":     "Long",
		"email":    "long@example.com",
		"password": strings.Repeat("a", 80),
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
	assert.Contains(t, body, "VALIDATION_FAILED")

	res, body = ts.SendRequest(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "asha@example.com",
		"password": "secret1",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	cookie := tokenCookie(res)
	require.NotNil(t, cookie, "Логин должен ставить cookie token")
	assert.True(t, cookie.HttpOnly)
	assert.NotEmpty(t, cookie.Value)

	req, err := http.NewRequest(http.MethodGet, ts.Server.URL+"/api/auth/me", nil)
	require.NoError(t, err)
	req.AddCookie(cookie)
	meRes, err := ts.Server.Client().Do(req)
	require.NoError(t, err)
	defer meRes.Body.Close()
	assert.Equal(t, http.StatusOK, meRes.StatusCode)

	var me struct {
		Success bool `json:"success"`
		Data    struct {
			Email string `json:"email"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(meRes.Body).Decode(&me))
	assert.True(t, me.Success)
	assert.Equal(t, "asha@example.com", me.Data.Email)

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/auth/logout", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	cleared := tokenCookie(res)
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
	assert.Less(t, cleared.MaxAge, 0)
}

func TestAuth_LoginWrongPassword(t *testing.T) {
	ts := helpers.NewTestServer(t)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    helpers.AdminEmail,
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Nil(t, tokenCookie(res))
	assert.Contains(t, body, "error")
}

func TestAuth_MeRequiresToken(t *testing.T) {
	ts := helpers.NewTestServer(t)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Contains(t, body, "Not authorized, no token provided")
}

func TestAuth_UpdatePassword(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token, user := helpers.CreateAndLoginUser(t, ts)

	res, body := ts.SendRequest(t, http.MethodPut, "/api/auth/update-password", token, map[string]string{
		"currentPassword":    "password123",
		"newPassword":        "password456",
		"confirmNewPassword": "password456",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	// старый пароль больше не подходит
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    user.Email,
		"password": "password123",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	helpers.Login(t, ts, user.Email, "password456")
}

var resetLink = regexp.MustCompile(`/reset-password/([0-9a-f]+)`)

// TestAuth_PasswordResetFlow - запрос ссылки, письмо, новый пароль, токен одноразовый
func TestAuth_PasswordResetFlow(t *testing.T) {
	ts := helpers.NewTestServer(t)
	_, user := helpers.CreateAndLoginUser(t, ts)

	// неизвестный email получает тот же ответ, письмо не уходит
	res, unknownBody := ts.SendRequest(t, http.MethodPost, "/api/auth/request-password-reset", "", map[string]string{
		"email": "nobody@jits.test",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Empty(t, ts.Mail.Sent())

	res, body := ts.SendRequest(t, http.MethodPost, "/api/auth/request-password-reset", "", map[string]string{
		"email": user.Email,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.JSONEq(t, unknownBody, body)

	sent := ts.Mail.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, []string{user.Email}, sent[0].To)
	match := resetLink.FindStringSubmatch(sent[0].HTMLBody)
	require.Len(t, match, 2, "В письме должна быть ссылка для сброса")
	resetToken := match[1]

	res, body = ts.SendRequest(t, http.MethodPost, "/api/auth/reset-password/"+resetToken, "", map[string]string{
		"password":        "brand-new",
		"confirmPassword": "brand-new",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, "Password has been reset successfully.")
	helpers.Login(t, ts, user.Email, "brand-new")

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/auth/reset-password/"+resetToken, "", map[string]string{
		"password":        "another-one",
		"confirmPassword": "another-one",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, "Токен сброса одноразовый")
}

func TestAuth_RateLimit(t *testing.T) {
	ts := helpers.NewTestServer(t, func(cfg *config.Config) {
		cfg.Auth.RateLimitRPS = 0.001
		cfg.Auth.RateLimitBurst = 2
	})

	creds := map[string]string{"email": helpers.AdminEmail, "password": "wrong"}
	for i := 0; i < 2; i++ {
		res, _ := ts.SendRequest(t, http.MethodPost, "/api/auth/login", "", creds)
		assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	}
	res, _ := ts.SendRequest(t, http.MethodPost, "/api/auth/login", "", creds)
	assert.Equal(t, http.StatusTooManyRequests, res.StatusCode)
}
