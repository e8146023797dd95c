package handlers

import (
	"net/http"
	"time"

	"jits_backend/internal/middleware"
	"jits_backend/internal/services"
	"jits_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
	cookie      CookieSettings
}

// CookieSettings - атрибуты cookie сессии. Logout очищает cookie с теми же атрибутами.
type CookieSettings struct {
	Secure bool
	MaxAge time.Duration
}

func (s CookieSettings) sameSite() http.SameSite {
	if s.Secure {
		return http.SameSiteNoneMode
	}
	return http.SameSiteLaxMode
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService, cookie CookieSettings) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
		cookie:      cookie,
	}
}

// RegisterRoutes регистрирует все маршруты для аутентификации
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup, guards Guards) {
	auth := rg.Group("/auth")
	{
		auth.POST("/signup", guards.RateLimit, h.Signup)
		auth.POST("/login", guards.RateLimit, h.Login)
		auth.POST("/logout", h.Logout)
		auth.POST("/request-password-reset", guards.RateLimit, h.RequestPasswordReset)
		auth.POST("/reset-password/:token", guards.RateLimit, h.ResetPassword)

		auth.PUT("/update-password", guards.Auth, h.UpdatePassword)
		auth.GET("/me", guards.Auth, h.Me)
	}
}

// Signup godoc
// @Summary Регистрация
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.SignupRequest true "Имя, email и пароль"
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /api/auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	user, token, err := h.authService.Signup(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{
		Success: true,
		Message: "User created successfully.",
		User:    dto.NewUserResponse(user),
		Token:   token,
	})
}

// Login godoc
// @Summary Вход, ставит cookie token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Email и пароль"
// @Success 200 {object} dto.AuthResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.setTokenCookie(c, token, int(h.cookie.MaxAge.Seconds()))
	c.JSON(http.StatusOK, dto.AuthResponse{
		Success: true,
		Message: "Login successful.",
		User:    dto.NewUserResponse(user),
		Token:   token,
	})
}

// Logout godoc
// @Summary Выход, очищает cookie token
// @Tags auth
// @Produce json
// @Success 200 {object} dto.SuccessResponse
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	h.setTokenCookie(c, "", -1)
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true, Message: "Logged out successfully."})
}

func (h *AuthHandler) setTokenCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(h.cookie.sameSite())
	c.SetCookie(middleware.TokenCookieName, value, maxAge, "/", "", h.cookie.Secure, true)
}

// UpdatePassword godoc
// @Summary Смена пароля текущего пользователя
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdatePasswordRequest true "Текущий и новый пароль"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Router /api/auth/update-password [put]
func (h *AuthHandler) UpdatePassword(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdatePasswordRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	if err := h.authService.UpdatePassword(c.Request.Context(), h.GetDB(c), userID, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true, Message: "Password updated successfully."})
}

// RequestPasswordReset godoc
// @Summary Запрос ссылки для сброса пароля
// @Description Ответ одинаковый, зарегистрирован email или нет
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RequestPasswordResetRequest true "Email"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /api/auth/request-password-reset [post]
func (h *AuthHandler) RequestPasswordReset(c *gin.Context) {
	var req dto.RequestPasswordResetRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	message, err := h.authService.RequestPasswordReset(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: message})
}

// ResetPassword godoc
// @Summary Новый пароль по токену из письма
// @Tags auth
// @Accept json
// @Produce json
// @Param token path string true "Токен из ссылки"
// @Param request body dto.ResetPasswordRequest true "Новый пароль"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /api/auth/reset-password/{token} [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	if err := h.authService.ResetPassword(c.Request.Context(), h.GetDB(c), c.Param("token"), &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{
		Success: true,
		Message: "Password has been reset successfully. Please log in with your new password.",
	})
}

// Me godoc
// @Summary Текущий пользователь
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	user, err := h.authService.Me(c.Request.Context(), h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true, Data: dto.NewUserResponse(user)})
}
