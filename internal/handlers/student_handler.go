package handlers

import (
	"net/http"

	"jits_backend/internal/services"
	"jits_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// Студенты отвечают в обертке {success, message, data}

type StudentHandler struct {
	*BaseHandler
	studentService services.StudentService
}

func NewStudentHandler(base *BaseHandler, studentService services.StudentService) *StudentHandler {
	return &StudentHandler{
		BaseHandler:    base,
		studentService: studentService,
	}
}

func (h *StudentHandler) RegisterRoutes(rg *gin.RouterGroup, guards Guards) {
	public := rg.Group("/students")
	{
		public.GET("", h.List)
		public.GET("/featured", h.Featured)
		public.GET("/slug/:slug", h.GetBySlug)
		public.GET("/specialization/:specialization", h.FindBySpecialization)
		public.GET("/:id", h.GetByID)
	}

	admin := rg.Group("/students", guards.AdminOnly()...)
	{
		admin.POST("", h.Create)
		admin.PUT("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
		admin.POST("/:id/testimonials", h.AddTestimonial)
		admin.POST("/:id/education", h.AddEducation)
	}
}

func studentFiles(c *gin.Context) dto.StudentFiles {
	return dto.StudentFiles{
		Image:      FormFile(c, "image"),
		CoverImage: FormFile(c, "coverImage"),
	}
}

// Create godoc
// @Summary Создать профиль студента
// @Tags students
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param name formData string true "Имя"
// @Param slug formData string true "Slug"
// @Param education formData string false "JSON-массив образования"
// @Param testimonials formData string false "JSON-массив отзывов"
// @Param image formData file false "Фото"
// @Param coverImage formData file false "Обложка"
// @Success 201 {object} dto.SuccessResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /api/students [post]
func (h *StudentHandler) Create(c *gin.Context) {
	var req dto.CreateStudentRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	student, err := h.studentService.Create(c.Request.Context(), h.GetDB(c), &req, studentFiles(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.SuccessResponse{Success: true, Message: "Student created successfully", Data: student})
}

// List godoc
// @Summary Список студентов с пагинацией
// @Tags students
// @Produce json
// @Param page query int false "Страница" default(1)
// @Param limit query int false "Размер страницы" default(10)
// @Param search query string false "Поиск по имени, должности, био"
// @Param specialization query string false "Специализация"
// @Success 200 {object} dto.PagedResponse
// @Router /api/students [get]
func (h *StudentHandler) List(c *gin.Context) {
	var query dto.StudentListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	page, err := h.studentService.List(c.Request.Context(), h.GetDB(c), &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PagedResponse{
		Success:     true,
		Data:        page.Items,
		TotalPages:  page.TotalPages,
		CurrentPage: page.CurrentPage,
		Total:       page.Total,
	})
}

// Featured godoc
// @Summary Студенты с бейджами
// @Tags students
// @Produce json
// @Param limit query int false "Лимит" default(6)
// @Success 200 {object} dto.SuccessResponse
// @Router /api/students/featured [get]
func (h *StudentHandler) Featured(c *gin.Context) {
	students, err := h.studentService.Featured(c.Request.Context(), h.GetDB(c), ParseQueryInt(c, "limit", 0))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true, Data: students})
}

// GetBySlug godoc
// @Summary Студент по slug
// @Tags students
// @Produce json
// @Param slug path string true "Slug"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /api/students/slug/{slug} [get]
func (h *StudentHandler) GetBySlug(c *gin.Context) {
	student, err := h.studentService.GetBySlug(c.Request.Context(), h.GetDB(c), c.Param("slug"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true, Data: student})
}

// GetByID godoc
// @Summary Студент по id
// @Tags students
// @Produce json
// @Param id path string true "ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /api/students/{id} [get]
func (h *StudentHandler) GetByID(c *gin.Context) {
	student, err := h.studentService.GetByID(c.Request.Context(), h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true, Data: student})
}

// FindBySpecialization godoc
// @Summary Студенты со специализацией
// @Tags students
// @Produce json
// @Param specialization path string true "Специализация"
// @Success 200 {object} dto.SuccessResponse
// @Router /api/students/specialization/{specialization} [get]
func (h *StudentHandler) FindBySpecialization(c *gin.Context) {
	students, err := h.studentService.FindBySpecialization(c.Request.Context(), h.GetDB(c), c.Param("specialization"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true, Data: students})
}

// Update godoc
// @Summary Обновить студента
// @Tags students
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID"
// @Param image formData file false "Новое фото"
// @Param coverImage formData file false "Новая обложка"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /api/students/{id} [put]
func (h *StudentHandler) Update(c *gin.Context) {
	var req dto.UpdateStudentRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	student, err := h.studentService.Update(c.Request.Context(), h.GetDB(c), c.Param("id"), &req, studentFiles(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true, Message: "Student updated successfully", Data: student})
}

// Delete godoc
// @Summary Удалить студента и его картинки
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /api/students/{id} [delete]
func (h *StudentHandler) Delete(c *gin.Context) {
	if err := h.studentService.Delete(c.Request.Context(), h.GetDB(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true, Message: "Student deleted successfully"})
}

// AddTestimonial godoc
// @Summary Добавить отзыв о студенте
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID"
// @Param request body dto.StudentTestimonialPayload true "Отзыв"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /api/students/{id}/testimonials [post]
func (h *StudentHandler) AddTestimonial(c *gin.Context) {
	var req dto.StudentTestimonialPayload
	if !h.BindAndValidate(c, &req) {
		return
	}

	student, err := h.studentService.AddTestimonial(c.Request.Context(), h.GetDB(c), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true, Message: "Testimonial added successfully", Data: student})
}

// AddEducation godoc
// @Summary Добавить запись об образовании
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID"
// @Param request body dto.AddEducationRequest true "Образование"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /api/students/{id}/education [post]
func (h *StudentHandler) AddEducation(c *gin.Context) {
	var req dto.AddEducationRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	student, err := h.studentService.AddEducation(c.Request.Context(), h.GetDB(c), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true, Message: "Education added successfully", Data: student})
}
