package handlers

import (
	"net/http"

	"jits_backend/internal/services"
	"jits_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// поле файла подуслуги: subServiceImage_<индекс в subServicesData>
const subServiceImagePrefix = "subServiceImage_"

type ServiceCategoryHandler struct {
	*BaseHandler
	categoryService services.ServiceCategoryService
}

func NewServiceCategoryHandler(base *BaseHandler, categoryService services.ServiceCategoryService) *ServiceCategoryHandler {
	return &ServiceCategoryHandler{
		BaseHandler:     base,
		categoryService: categoryService,
	}
}

func (h *ServiceCategoryHandler) RegisterRoutes(r gin.IRouter, guards Guards) {
	admin := r.Group("/services", guards.AdminOnly()...)
	{
		admin.POST("/create", h.Create)
		admin.GET("/find", h.FindAll)
		admin.PUT("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
	}

	public := r.Group("/services")
	{
		public.GET("/public", h.FindPublic)
		public.GET("/:id", h.GetPublic)
	}
}

func serviceFiles(c *gin.Context) dto.ServiceFiles {
	return dto.ServiceFiles{
		MainImage: FormFile(c, "mainImage"),
		SubImages: IndexedFormFiles(c, subServiceImagePrefix),
	}
}

// Create godoc
// @Summary Создать категорию услуг
// @Description Картинки подуслуг загружаются параллельно, ошибка одной не отменяет создание
// @Tags services
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param name formData string true "Название"
// @Param slug formData string true "Slug"
// @Param description formData string true "Описание"
// @Param subServicesData formData string false "JSON-массив подуслуг"
// @Param mainImage formData file true "Главная картинка"
// @Success 201 {object} dto.DataResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /services/create [post]
func (h *ServiceCategoryHandler) Create(c *gin.Context) {
	var req dto.CreateServiceRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	category, err := h.categoryService.Create(c.Request.Context(), h.GetDB(c), &req, serviceFiles(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.DataResponse{Message: "Service created successfully", Data: category})
}

// FindAll godoc
// @Summary Все категории, новые первыми
// @Tags services
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.ServiceCategory
// @Router /services/find [get]
func (h *ServiceCategoryHandler) FindAll(c *gin.Context) {
	categories, err := h.categoryService.FindAll(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// FindPublic godoc
// @Summary Активные категории по имени
// @Tags services
// @Produce json
// @Success 200 {array} models.ServiceCategory
// @Router /services/public [get]
func (h *ServiceCategoryHandler) FindPublic(c *gin.Context) {
	categories, err := h.categoryService.FindPublic(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// GetPublic godoc
// @Summary Активная категория по slug или id
// @Tags services
// @Produce json
// @Param slugOrId path string true "Slug или ID"
// @Success 200 {object} models.ServiceCategory
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /services/{slugOrId} [get]
func (h *ServiceCategoryHandler) GetPublic(c *gin.Context) {
	category, err := h.categoryService.GetPublic(c.Request.Context(), h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

// Update godoc
// @Summary Обновить категорию
// @Description subServicesData, если передан, полностью задает список подуслуг
// @Tags services
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID"
// @Param subServicesData formData string false "JSON-массив подуслуг"
// @Param mainImage formData file false "Новая главная картинка"
// @Success 200 {object} dto.DataResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /services/{id} [put]
func (h *ServiceCategoryHandler) Update(c *gin.Context) {
	var req dto.UpdateServiceRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	category, err := h.categoryService.Update(c.Request.Context(), h.GetDB(c), c.Param("id"), &req, serviceFiles(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DataResponse{Message: "Service updated successfully", Data: category})
}

// Delete godoc
// @Summary Удалить категорию и все ее картинки
// @Tags services
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /services/{id} [delete]
func (h *ServiceCategoryHandler) Delete(c *gin.Context) {
	if err := h.categoryService.Delete(c.Request.Context(), h.GetDB(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Service deleted successfully."})
}
