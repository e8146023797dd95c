package helpers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"jits_backend/database"
	"jits_backend/internal/app"
	"jits_backend/internal/config"
	"jits_backend/internal/email"
	"jits_backend/internal/services"
	"jits_backend/internal/storage"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const (
	AdminEmail    = "admin@jits.test"
	AdminPassword = "admin-password"
)

// TestServer - приложение целиком поверх sqlite в памяти, памяти вместо S3 и записи писем вместо SMTP
type TestServer struct {
	Server   *httptest.Server
	DB       *gorm.DB
	Storage  *storage.MemoryStorage
	Mail     *email.RecordingProvider
	Services *services.ServiceContainer
}

// TestConfig - конфиг для тестов. mutate может подправить его до сборки роутера.
func TestConfig() *config.Config {
	cfg := config.Default()
	cfg.Server.Env = "test"
	cfg.Server.FrontendURL = "http://frontend.test"
	cfg.Database.Driver = "sqlite"
	cfg.Database.DSN = "file::memory:"
	cfg.Storage.Type = "memory"
	cfg.Storage.BaseURL = "/files"
	cfg.Auth.RateLimitRPS = 0
	cfg.FirstAdminEmail = AdminEmail
	cfg.FirstAdminPassword = AdminPassword
	return cfg
}

// NewTestServer поднимает httptest-сервер. Закрывается через t.Cleanup.
func NewTestServer(t *testing.T, mutate ...func(*config.Config)) *TestServer {
	t.Helper()

	cfg := TestConfig()
	for _, m := range mutate {
		m(cfg)
	}

	db, err := database.Connect(cfg)
	require.NoError(t, err, "Не удалось подключиться к тестовой БД")
	require.NoError(t, database.AutoMigrate(db))

	templates, err := email.NewDefaultTemplateManager()
	require.NoError(t, err)
	mail := email.NewRecordingProvider(templates)
	store := storage.NewMemoryStorage(cfg.Storage.BaseURL)

	router, container := app.SetupRouter(cfg, db, store, mail)
	require.NoError(t, container.AuthService.SeedFirstAdmin(context.Background(), db, cfg.FirstAdminEmail, cfg.FirstAdminPassword))

	ts := &TestServer{
		Server:   httptest.NewServer(router),
		DB:       db,
		Storage:  store,
		Mail:     mail,
		Services: container,
	}
	t.Cleanup(ts.Close)
	return ts
}

func (ts *TestServer) Close() {
	ts.Server.Close()
	if sqlDB, err := ts.DB.DB(); err == nil {
		sqlDB.Close()
	}
}

// SendRequest отправляет JSON-запрос и возвращает ответ с телом
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err, "Ошибка кодирования JSON для запроса")
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reqBody)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return ts.do(t, req, token)
}

// Upload - файл для multipart-запроса
type Upload struct {
	Filename string
	Content  []byte
}

// SendMultipart отправляет форму с полями и файлами, как это делает админка
func (ts *TestServer) SendMultipart(t *testing.T, method, path, token string, fields map[string]string, files map[string]Upload) (*http.Response, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for name, value := range fields {
		require.NoError(t, writer.WriteField(name, value))
	}
	for field, file := range files {
		part, err := writer.CreateFormFile(field, file.Filename)
		require.NoError(t, err)
		_, err = part.Write(file.Content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req, err := http.NewRequest(method, ts.Server.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return ts.do(t, req, token)
}

func (ts *TestServer) do(t *testing.T, req *http.Request, token string) (*http.Response, string) {
	t.Helper()

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	res, err := ts.Server.Client().Do(req)
	require.NoError(t, err, "Ошибка отправки HTTP-запроса")
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	require.NoError(t, err, "Ошибка чтения тела ответа")
	return res, string(resBody)
}
