package handlers

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"path"
	"strings"

	"jits_backend/internal/logger"
	"jits_backend/internal/storage"
	"jits_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// FileHandler раздает блобы локального хранилища по /files/<key>.
// С S3 не регистрируется: URL объектов указывают прямо в бакет.
type FileHandler struct {
	*BaseHandler
	reader storage.Reader
}

func NewFileHandler(base *BaseHandler, reader storage.Reader) *FileHandler {
	return &FileHandler{
		BaseHandler: base,
		reader:      reader,
	}
}

func (h *FileHandler) RegisterRoutes(r gin.IRouter) {
	files := r.Group("/files")
	{
		files.GET("/*key", h.ServeFile)
		files.HEAD("/*key", h.ServeFile)
	}
}

// ServeFile godoc
// @Summary Файл из локального хранилища
// @Tags files
// @Param key path string true "Ключ объекта"
// @Success 200 {file} file
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /files/{key} [get]
func (h *FileHandler) ServeFile(c *gin.Context) {
	key := strings.TrimPrefix(path.Clean("/"+c.Param("key")), "/")
	if key == "" {
		apperrors.HandleError(c, apperrors.NotFound("media", "File not found"))
		return
	}

	reader, err := h.reader.Open(c.Request.Context(), key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logger.CtxWithError(c.Request.Context(), "Failed to open file", err, "key", key)
		}
		apperrors.HandleError(c, apperrors.NotFound("media", "File not found"))
		return
	}
	defer reader.Close()

	contentType := mime.TypeByExtension(path.Ext(key))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Type", contentType)
	c.Header("Cache-Control", "public, max-age=31536000") // ключи неизменяемые
	c.Header("X-Content-Type-Options", "nosniff")
	c.Status(http.StatusOK)

	if c.Request.Method == http.MethodHead {
		return
	}
	if _, err := io.Copy(c.Writer, reader); err != nil {
		// заголовки уже отправлены
		_ = c.Error(err)
	}
}
