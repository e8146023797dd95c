package services

import (
	"context"
	"fmt"
	"mime"
	"mime/multipart"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"jits_backend/internal/logger"
	"jits_backend/internal/models"
	"jits_backend/internal/storage"
	"jits_backend/pkg/apperrors"

	"github.com/google/uuid"
)

// ============================================
// MEDIA SERVICE
// ============================================

// MediaService загружает файлы сущностей в блоб-хранилище и удаляет их оттуда
type MediaService interface {
	// Upload проверяет файл по политике и сохраняет его в папку folder
	Upload(ctx context.Context, folder string, policy UploadPolicy, file *FileInput) (*models.MediaRef, error)
	// Delete удаляет блоб по ключу
	Delete(ctx context.Context, key string) error
	// DeleteAll удаляет блобы без остановки на ошибках, ошибки только логируются
	DeleteAll(ctx context.Context, keys []string)
}

// FileInput - файл из multipart-формы
type FileInput = multipart.FileHeader

// UploadPolicy - ограничения на загружаемый файл
type UploadPolicy struct {
	MaxSize      int64
	AllowedTypes []string // точный MIME-тип или префикс вида "image/"
}

// Allows проверяет MIME-тип по списку
func (p UploadPolicy) Allows(contentType string) bool {
	for _, allowed := range p.AllowedTypes {
		if strings.HasSuffix(allowed, "/") {
			if strings.HasPrefix(contentType, allowed) {
				return true
			}
			continue
		}
		if contentType == allowed {
			return true
		}
	}
	return false
}

// UploadPolicies - политики по типам сущностей
type UploadPolicies struct {
	Image        UploadPolicy // курсы, услуги
	StudentImage UploadPolicy // студенты
	Media        UploadPolicy // блоги, отзывы, истории
}

func NewUploadPolicies(imageMax, studentImageMax, mediaMax int64) UploadPolicies {
	return UploadPolicies{
		Image:        UploadPolicy{MaxSize: imageMax, AllowedTypes: []string{"image/"}},
		StudentImage: UploadPolicy{MaxSize: studentImageMax, AllowedTypes: []string{"image/"}},
		Media:        UploadPolicy{MaxSize: mediaMax, AllowedTypes: []string{"image/", "video/", "application/pdf"}},
	}
}

type mediaService struct {
	storage storage.Storage
	now     func() time.Time
}

func NewMediaService(storage storage.Storage) MediaService {
	return &mediaService{
		storage: storage,
		now:     time.Now,
	}
}

func (s *mediaService) Upload(ctx context.Context, folder string, policy UploadPolicy, file *FileInput) (*models.MediaRef, error) {
	if file == nil {
		return nil, apperrors.Validation("media", "No file was uploaded.")
	}

	if policy.MaxSize > 0 && file.Size > policy.MaxSize {
		return nil, apperrors.Validation("media",
			fmt.Sprintf("File %s exceeds the maximum size of %d MB.", file.Filename, policy.MaxSize>>20))
	}

	contentType := detectContentType(file)
	if !policy.Allows(contentType) {
		return nil, apperrors.Validation("media",
			fmt.Sprintf("File type %s is not allowed.", contentType))
	}

	src, err := file.Open()
	if err != nil {
		return nil, apperrors.Validation("media", "Uploaded file could not be read.").WithError(err)
	}
	defer src.Close()

	key := s.buildKey(folder, file.Filename)
	if err := s.storage.Save(ctx, key, src, contentType); err != nil {
		return nil, apperrors.Upstream(err, "media", "Failed to upload file.")
	}

	logger.CtxDebug(ctx, "Media uploaded", "key", key, "size", file.Size, "content_type", contentType)

	return &models.MediaRef{
		URL:         s.storage.URL(key),
		Key:         key,
		ContentType: contentType,
	}, nil
}

func (s *mediaService) Delete(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}
	if err := s.storage.Delete(ctx, key); err != nil {
		return apperrors.Upstream(err, "media", "Failed to delete file.")
	}
	return nil
}

func (s *mediaService) DeleteAll(ctx context.Context, keys []string) {
	for _, key := range keys {
		if err := s.Delete(ctx, key); err != nil {
			logger.CtxWithError(ctx, "Failed to delete media", err, "key", key)
		}
	}
}

// ============================================
// ВСПОМОГАТЕЛЬНЫЕ ФУНКЦИИ
// ============================================

var unsafeNameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// buildKey - <folder>/<unix-ms>-<uuid8>-<имя файла>
func (s *mediaService) buildKey(folder, filename string) string {
	return fmt.Sprintf("%s/%d-%s-%s",
		strings.Trim(folder, "/"),
		s.now().UnixMilli(),
		uuid.NewString()[:8],
		safeFileName(filename),
	)
}

func safeFileName(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, `\`, "/"))
	name = unsafeNameChars.ReplaceAllString(strings.ReplaceAll(name, " ", "-"), "")
	name = strings.Trim(name, ".-")
	if name == "" {
		return "file"
	}
	if len(name) > 100 {
		name = name[len(name)-100:]
	}
	return name
}

// extraMimeTypes - расширения, которых нет во встроенной таблице mime
var extraMimeTypes = map[string]string{
	".mp4":  "video/mp4",
	".webm": "video/webm",
	".mov":  "video/quicktime",
	".m4v":  "video/x-m4v",
	".heic": "image/heic",
}

// detectContentType: заголовок части формы, затем расширение файла
func detectContentType(file *multipart.FileHeader) string {
	if ct := file.Header.Get("Content-Type"); ct != "" && ct != "application/octet-stream" {
		if mediaType, _, err := mime.ParseMediaType(ct); err == nil {
			return mediaType
		}
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ct, ok := extraMimeTypes[ext]; ok {
		return ct
	}
	if ct := mime.TypeByExtension(ext); ct != "" {
		if mediaType, _, err := mime.ParseMediaType(ct); err == nil {
			return mediaType
		}
	}
	return "application/octet-stream"
}

// mediaTypeOf - тип медиа отзыва по MIME-типу
func mediaTypeOf(contentType string) models.MediaType {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return models.MediaTypeImage
	case strings.HasPrefix(contentType, "video/"):
		return models.MediaTypeVideo
	default:
		return models.MediaTypeNone
	}
}
