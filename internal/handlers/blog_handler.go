package handlers

import (
	"net/http"

	"jits_backend/internal/services"
	"jits_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type BlogHandler struct {
	*BaseHandler
	blogService services.BlogService
}

func NewBlogHandler(base *BaseHandler, blogService services.BlogService) *BlogHandler {
	return &BlogHandler{
		BaseHandler: base,
		blogService: blogService,
	}
}

func (h *BlogHandler) RegisterRoutes(r gin.IRouter, guards Guards) {
	// Public routes
	public := r.Group("/blogs")
	{
		public.GET("", h.List)
		public.GET("/slug/:slug", h.GetBySlug)
		public.GET("/:id", h.GetByID)
	}

	// Admin routes
	admin := r.Group("/blogs", guards.AdminOnly()...)
	{
		admin.POST("/create", h.Create)
		admin.PUT("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
	}
}

// Create godoc
// @Summary Создать пост блога
// @Tags blogs
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Заголовок"
// @Param tags formData string false "Теги через запятую"
// @Param image formData file false "Обложка"
// @Success 201 {object} dto.DataResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /blogs/create [post]
func (h *BlogHandler) Create(c *gin.Context) {
	var req dto.CreateBlogRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	blog, err := h.blogService.Create(c.Request.Context(), h.GetDB(c), &req, FormFile(c, "image"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.DataResponse{Message: "Blog post created successfully", Data: blog})
}

// List godoc
// @Summary Список постов
// @Tags blogs
// @Produce json
// @Param status query string false "draft | published"
// @Param category query string false "Категория"
// @Success 200 {array} models.Blog
// @Router /blogs [get]
func (h *BlogHandler) List(c *gin.Context) {
	var query dto.BlogListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	blogs, err := h.blogService.List(c.Request.Context(), h.GetDB(c), &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, blogs)
}

// GetBySlug godoc
// @Summary Пост по slug
// @Tags blogs
// @Produce json
// @Param slug path string true "Slug"
// @Success 200 {object} models.Blog
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /blogs/slug/{slug} [get]
func (h *BlogHandler) GetBySlug(c *gin.Context) {
	blog, err := h.blogService.GetBySlug(c.Request.Context(), h.GetDB(c), c.Param("slug"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, blog)
}

// GetByID godoc
// @Summary Пост по id
// @Tags blogs
// @Produce json
// @Param id path string true "ID"
// @Success 200 {object} models.Blog
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /blogs/{id} [get]
func (h *BlogHandler) GetByID(c *gin.Context) {
	blog, err := h.blogService.GetByID(c.Request.Context(), h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, blog)
}

// Update godoc
// @Summary Обновить пост
// @Description Частичное обновление. Новый image заменяет старый файл.
// @Tags blogs
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID"
// @Param image formData file false "Новая обложка"
// @Success 200 {object} dto.DataResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /blogs/{id} [put]
func (h *BlogHandler) Update(c *gin.Context) {
	var req dto.UpdateBlogRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	blog, err := h.blogService.Update(c.Request.Context(), h.GetDB(c), c.Param("id"), &req, FormFile(c, "image"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DataResponse{Message: "Blog post updated successfully", Data: blog})
}

// Delete godoc
// @Summary Удалить пост вместе с файлом
// @Tags blogs
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /blogs/{id} [delete]
func (h *BlogHandler) Delete(c *gin.Context) {
	if err := h.blogService.Delete(c.Request.Context(), h.GetDB(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Blog post deleted successfully"})
}
