package handlers

import (
	"net/http"

	"jits_backend/internal/services"
	"jits_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type CourseHandler struct {
	*BaseHandler
	courseService services.CourseService
}

func NewCourseHandler(base *BaseHandler, courseService services.CourseService) *CourseHandler {
	return &CourseHandler{
		BaseHandler:   base,
		courseService: courseService,
	}
}

func (h *CourseHandler) RegisterRoutes(r gin.IRouter, guards Guards) {
	// Admin routes
	admin := r.Group("/courses", guards.AdminOnly()...)
	{
		admin.POST("/create", h.Create)
		admin.GET("/find", h.FindAll)
		admin.PUT("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
	}

	// Public routes. /:slugOrId регистрируется последним
	public := r.Group("/courses")
	{
		public.GET("/public", h.FindPublic)
		public.GET("/featured", h.FindFeatured)
		public.GET("/search", h.Search)
		public.GET("/category/:category", h.FindByCategory)
		public.POST("/:id/rating", h.Rate)
		public.GET("/:id", h.GetPublic)
	}
}

// Create godoc
// @Summary Создать курс
// @Tags courses
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Название"
// @Param slug formData string true "Slug"
// @Param description formData string true "Описание"
// @Param price formData number true "Цена"
// @Param category formData string true "Категория"
// @Param features formData string false "JSON-массив строк"
// @Param image formData file true "Обложка"
// @Success 201 {object} dto.DataResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /courses/create [post]
func (h *CourseHandler) Create(c *gin.Context) {
	var req dto.CreateCourseRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	course, err := h.courseService.Create(c.Request.Context(), h.GetDB(c), &req, FormFile(c, "image"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.DataResponse{Message: "Course created successfully", Data: course})
}

// FindAll godoc
// @Summary Все курсы, включая неактивные
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Course
// @Router /courses/find [get]
func (h *CourseHandler) FindAll(c *gin.Context) {
	courses, err := h.courseService.FindAll(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, courses)
}

// FindPublic godoc
// @Summary Активные курсы
// @Tags courses
// @Produce json
// @Success 200 {array} models.Course
// @Router /courses/public [get]
func (h *CourseHandler) FindPublic(c *gin.Context) {
	courses, err := h.courseService.FindPublic(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, courses)
}

// FindFeatured godoc
// @Summary Рекомендуемые активные курсы
// @Tags courses
// @Produce json
// @Success 200 {array} models.Course
// @Router /courses/featured [get]
func (h *CourseHandler) FindFeatured(c *gin.Context) {
	courses, err := h.courseService.FindFeatured(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, courses)
}

// Search godoc
// @Summary Поиск по активным курсам
// @Tags courses
// @Produce json
// @Param q query string false "Подстрока в title, description, category"
// @Param category query string false "Категория"
// @Param level query string false "Beginner | Intermediate | Advanced"
// @Param minPrice query number false "Минимальная цена"
// @Param maxPrice query number false "Максимальная цена"
// @Success 200 {array} models.Course
// @Router /courses/search [get]
func (h *CourseHandler) Search(c *gin.Context) {
	var query dto.CourseSearchQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	courses, err := h.courseService.Search(c.Request.Context(), h.GetDB(c), &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, courses)
}

// FindByCategory godoc
// @Summary Активные курсы категории
// @Tags courses
// @Produce json
// @Param category path string true "Категория, без учета регистра"
// @Success 200 {array} models.Course
// @Router /courses/category/{category} [get]
func (h *CourseHandler) FindByCategory(c *gin.Context) {
	courses, err := h.courseService.FindByCategory(c.Request.Context(), h.GetDB(c), c.Param("category"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, courses)
}

// GetPublic godoc
// @Summary Активный курс по slug или id
// @Tags courses
// @Produce json
// @Param slugOrId path string true "Slug или ID"
// @Success 200 {object} models.Course
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /courses/{slugOrId} [get]
func (h *CourseHandler) GetPublic(c *gin.Context) {
	course, err := h.courseService.GetPublic(c.Request.Context(), h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, course)
}

// Update godoc
// @Summary Обновить курс
// @Tags courses
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID"
// @Param image formData file false "Новая обложка"
// @Success 200 {object} dto.DataResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /courses/{id} [put]
func (h *CourseHandler) Update(c *gin.Context) {
	var req dto.UpdateCourseRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	course, err := h.courseService.Update(c.Request.Context(), h.GetDB(c), c.Param("id"), &req, FormFile(c, "image"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DataResponse{Message: "Course updated successfully", Data: course})
}

// Rate godoc
// @Summary Оценить курс
// @Tags courses
// @Accept json
// @Produce json
// @Param id path string true "ID"
// @Param request body dto.RateCourseRequest true "Оценка 1-5"
// @Success 200 {object} dto.DataResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /courses/{id}/rating [post]
func (h *CourseHandler) Rate(c *gin.Context) {
	var req dto.RateCourseRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	course, err := h.courseService.Rate(c.Request.Context(), h.GetDB(c), c.Param("id"), req.Rating)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DataResponse{
		Message: "Rating updated successfully",
		Data:    gin.H{"rating": course.Rating, "totalRatings": course.TotalRatings},
	})
}

// Delete godoc
// @Summary Удалить курс вместе с обложкой
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /courses/{id} [delete]
func (h *CourseHandler) Delete(c *gin.Context) {
	if err := h.courseService.Delete(c.Request.Context(), h.GetDB(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Course deleted successfully."})
}
