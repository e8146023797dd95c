package handlers

import (
	"net/http"

	"jits_backend/internal/services"
	"jits_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type SuccessStoryHandler struct {
	*BaseHandler
	storyService services.SuccessStoryService
}

func NewSuccessStoryHandler(base *BaseHandler, storyService services.SuccessStoryService) *SuccessStoryHandler {
	return &SuccessStoryHandler{
		BaseHandler:  base,
		storyService: storyService,
	}
}

func (h *SuccessStoryHandler) RegisterRoutes(r gin.IRouter, guards Guards) {
	public := r.Group("/student-success-stories")
	{
		public.GET("", h.List)
		public.GET("/:id", h.GetByID)
	}

	admin := r.Group("/student-success-stories", guards.AdminOnly()...)
	{
		admin.POST("/create", h.Create)
		admin.PUT("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
	}
}

func storyFiles(c *gin.Context) dto.TestimonialFiles {
	return dto.TestimonialFiles{
		Media:        FormFile(c, "media"),
		ProfileImage: FormFile(c, "profileImage"),
	}
}

// Create godoc
// @Summary Создать историю успеха
// @Tags student-success-stories
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param name formData string true "Имя"
// @Param designation formData string true "Должность"
// @Param content formData string true "История"
// @Param location formData string false "Город"
// @Param media formData file false "Фото или видео"
// @Param profileImage formData file false "Фото профиля"
// @Success 201 {object} dto.DataResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /student-success-stories/create [post]
func (h *SuccessStoryHandler) Create(c *gin.Context) {
	var req dto.CreateTestimonialRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	story, err := h.storyService.Create(c.Request.Context(), h.GetDB(c), &req, storyFiles(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.DataResponse{Message: "Story created successfully", Data: story})
}

// List godoc
// @Summary Истории успеха
// @Tags student-success-stories
// @Produce json
// @Param isActive query bool false "Фильтр по активности"
// @Success 200 {array} models.SuccessStory
// @Router /student-success-stories [get]
func (h *SuccessStoryHandler) List(c *gin.Context) {
	var query dto.TestimonialListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	stories, err := h.storyService.List(c.Request.Context(), h.GetDB(c), &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stories)
}

// GetByID godoc
// @Summary История по id
// @Tags student-success-stories
// @Produce json
// @Param id path string true "ID"
// @Success 200 {object} models.SuccessStory
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /student-success-stories/{id} [get]
func (h *SuccessStoryHandler) GetByID(c *gin.Context) {
	story, err := h.storyService.GetByID(c.Request.Context(), h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, story)
}

// Update godoc
// @Summary Обновить историю
// @Tags student-success-stories
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID"
// @Param media formData file false "Новое фото или видео"
// @Param profileImage formData file false "Новое фото профиля"
// @Success 200 {object} dto.DataResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /student-success-stories/{id} [put]
func (h *SuccessStoryHandler) Update(c *gin.Context) {
	var req dto.UpdateTestimonialRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	story, err := h.storyService.Update(c.Request.Context(), h.GetDB(c), c.Param("id"), &req, storyFiles(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DataResponse{Message: "Story updated successfully", Data: story})
}

// Delete godoc
// @Summary Удалить историю и ее файлы
// @Tags student-success-stories
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /student-success-stories/{id} [delete]
func (h *SuccessStoryHandler) Delete(c *gin.Context) {
	if err := h.storyService.Delete(c.Request.Context(), h.GetDB(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Story deleted successfully"})
}
