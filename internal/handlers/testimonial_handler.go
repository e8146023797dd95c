package handlers

import (
	"net/http"

	"jits_backend/internal/services"
	"jits_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type TestimonialHandler struct {
	*BaseHandler
	testimonialService services.TestimonialService
}

func NewTestimonialHandler(base *BaseHandler, testimonialService services.TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{
		BaseHandler:        base,
		testimonialService: testimonialService,
	}
}

func (h *TestimonialHandler) RegisterRoutes(r gin.IRouter, guards Guards) {
	public := r.Group("/testimonials")
	{
		public.GET("", h.List)
		public.GET("/:id", h.GetByID)
	}

	// старые клиенты ходят на /update/:id и /delete/:id
	admin := r.Group("/testimonials", guards.AdminOnly()...)
	{
		admin.POST("/create", h.Create)
		admin.PUT("/:id", h.Update)
		admin.PUT("/update/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
		admin.DELETE("/delete/:id", h.Delete)
	}
}

// Create godoc
// @Summary Создать отзыв
// @Description mediaType определяется по MIME загруженного файла
// @Tags testimonials
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param name formData string true "Имя"
// @Param designation formData string true "Должность"
// @Param content formData string true "Текст"
// @Param rating formData int false "Оценка 1-5" default(5)
// @Param media formData file false "Фото или видео"
// @Success 201 {object} dto.DataResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /testimonials/create [post]
func (h *TestimonialHandler) Create(c *gin.Context) {
	var req dto.CreateTestimonialRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	testimonial, err := h.testimonialService.Create(c.Request.Context(), h.GetDB(c), &req, FormFile(c, "media"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.DataResponse{Message: "Testimonial created successfully", Data: testimonial})
}

// List godoc
// @Summary Отзывы по порядку отображения
// @Tags testimonials
// @Produce json
// @Param isActive query bool false "Фильтр по активности"
// @Success 200 {array} models.Testimonial
// @Router /testimonials [get]
func (h *TestimonialHandler) List(c *gin.Context) {
	var query dto.TestimonialListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	testimonials, err := h.testimonialService.List(c.Request.Context(), h.GetDB(c), &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, testimonials)
}

// GetByID godoc
// @Summary Отзыв по id
// @Tags testimonials
// @Produce json
// @Param id path string true "ID"
// @Success 200 {object} models.Testimonial
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /testimonials/{id} [get]
func (h *TestimonialHandler) GetByID(c *gin.Context) {
	testimonial, err := h.testimonialService.GetByID(c.Request.Context(), h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, testimonial)
}

// Update godoc
// @Summary Обновить отзыв
// @Tags testimonials
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID"
// @Param removeMedia formData bool false "Удалить текущий файл"
// @Param media formData file false "Новое фото или видео"
// @Success 200 {object} dto.DataResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /testimonials/{id} [put]
func (h *TestimonialHandler) Update(c *gin.Context) {
	var req dto.UpdateTestimonialRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	testimonial, err := h.testimonialService.Update(c.Request.Context(), h.GetDB(c), c.Param("id"), &req, FormFile(c, "media"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DataResponse{Message: "Testimonial updated successfully", Data: testimonial})
}

// Delete godoc
// @Summary Удалить отзыв и его файл
// @Tags testimonials
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /testimonials/{id} [delete]
func (h *TestimonialHandler) Delete(c *gin.Context) {
	if err := h.testimonialService.Delete(c.Request.Context(), h.GetDB(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Testimonial deleted successfully"})
}
