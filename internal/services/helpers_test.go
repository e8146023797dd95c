package services

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"testing"

	"jits_backend/internal/models"
	"jits_backend/internal/storage"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const testMaxSize = 1 << 20

var (
	testImagePolicy = UploadPolicy{MaxSize: testMaxSize, AllowedTypes: []string{"image/"}}
	testMediaPolicy = UploadPolicy{MaxSize: testMaxSize, AllowedTypes: []string{"image/", "video/", "application/pdf"}}
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Blog{},
		&models.Course{},
		&models.ServiceCategory{},
		&models.Student{},
		&models.Testimonial{},
		&models.SuccessStory{},
	))
	return db
}

func newTestMedia() (*storage.MemoryStorage, MediaService) {
	store := storage.NewMemoryStorage("https://cdn.test")
	return store, NewMediaService(store)
}

// fileHeader собирает настоящий multipart-файл
func fileHeader(t *testing.T, filename, contentType string, data []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(testMaxSize * 4)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })
	return form.File["file"][0]
}

func pngFile(t *testing.T, name string) *multipart.FileHeader {
	return fileHeader(t, name, "image/png", []byte("\x89PNG fake image"))
}

func ptr[T any](v T) *T {
	return &v
}
