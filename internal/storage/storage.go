package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
)

var ErrNotFound = errors.New("object not found")

// Storage - блоб-хранилище: ключ -> байты, у каждого объекта есть публичный URL
type Storage interface {
	// Save сохраняет объект под ключом
	Save(ctx context.Context, key string, reader io.Reader, contentType string) error

	// Delete удаляет объект; отсутствие объекта не считается ошибкой
	Delete(ctx context.Context, key string) error

	// URL возвращает публичный адрес объекта
	URL(key string) string
}

// Reader - хранилища, которые умеют отдавать объект сами (local, memory).
// S3 раздает файлы по своему URL.
type Reader interface {
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}

// Config - настройки хранилища
type Config struct {
	Type      string // s3, local, memory
	BasePath  string // local
	BaseURL   string // публичный префикс
	Bucket    string
	Region    string
	AccessKey string
	SecretKey string
	Endpoint  string // S3-совместимый endpoint (R2, MinIO)
}

// NewStorage создает хранилище по типу из конфигурации
func NewStorage(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "s3":
		return NewS3Storage(cfg)
	case "local":
		return NewLocalStorage(cfg)
	case "memory":
		return NewMemoryStorage(cfg.BaseURL), nil
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
