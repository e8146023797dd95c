package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"jits_backend/internal/auth"
	"jits_backend/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// CreateUser пишет пользователя прямо в базу, пароль хешируется
func CreateUser(t *testing.T, db *gorm.DB, name, email, password string, role models.UserRole) *models.User {
	t.Helper()

	hash, err := auth.HashPassword(password)
	require.NoError(t, err, "Не удалось хешировать пароль")

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	require.NoError(t, db.Create(user).Error, "Не удалось создать пользователя %s", email)
	return user
}

// Login логинится через API и возвращает JWT из тела ответа
func Login(t *testing.T, ts *TestServer, email, password string) string {
	t.Helper()

	res, body := ts.SendRequest(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "Логин должен быть успешным. Ответ: "+body)

	var loginResponse struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &loginResponse))
	require.NotEmpty(t, loginResponse.Token, "Токен не должен быть пустым")
	return loginResponse.Token
}

// AdminToken - токен администратора, созданного при старте сервера
func AdminToken(t *testing.T, ts *TestServer) string {
	return Login(t, ts, AdminEmail, AdminPassword)
}

// CreateAndLoginUser создает обычного пользователя с уникальным email
func CreateAndLoginUser(t *testing.T, ts *TestServer) (string, *models.User) {
	email := fmt.Sprintf("user_%d@jits.test", time.Now().UnixNano())
	user := CreateUser(t, ts.DB, "Test User", email, "password123", models.UserRoleUser)
	return Login(t, ts, email, "password123"), user
}

// PNG - минимальное содержимое картинки для загрузок
var PNG = []byte("\x89PNG\r\n\x1a\n")
