package middleware

import (
	"strings"

	"jits_backend/internal/auth"
	"jits_backend/internal/logger"
	"jits_backend/pkg/apperrors"
	"jits_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

// TokenCookieName - cookie сессии, которую ставит login
const TokenCookieName = "token"

// AuthMiddleware - middleware проверки JWT. Токен берется из заголовка
// Authorization: Bearer <jwt>, иначе из cookie token.
func AuthMiddleware(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := extractToken(c)
		if tokenStr == "" {
			logger.CtxWarn(c.Request.Context(), "Missing auth token", "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Not authorized, no token provided"))
			return
		}

		claims, err := tokens.Parse(tokenStr)
		if err != nil {
			logger.CtxWarn(c.Request.Context(), "Invalid auth token", "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Not authorized, token failed"))
			return
		}

		// Сохраняем claims в контекст
		c.Set(string(contextkeys.UserIDKey), claims.ID)
		c.Set(string(contextkeys.ClaimsKey), claims)
		c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), claims.ID))
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		if tok := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer ")); tok != "" {
			return tok
		}
	}
	if cookie, err := c.Cookie(TokenCookieName); err == nil {
		return cookie
	}
	return ""
}

// RequireAdmin пропускает только администраторов. Ставится после AuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			apperrors.HandleError(c, apperrors.NewForbiddenError("Access denied: no role"))
			return
		}

		if !auth.IsAdmin(claims) {
			logger.CtxWarn(c.Request.Context(), "Access denied",
				"role", claims.Role,
				"path", c.Request.URL.Path,
			)
			apperrors.HandleError(c, apperrors.NewForbiddenError("Access denied: insufficient permissions"))
			return
		}

		c.Next()
	}
}

// GetUserID извлекает ID пользователя из контекста
func GetUserID(c *gin.Context) string {
	return c.GetString(string(contextkeys.UserIDKey))
}

// GetClaims - claims токена текущего запроса, nil до AuthMiddleware
func GetClaims(c *gin.Context) *auth.Claims {
	if v, ok := c.Get(string(contextkeys.ClaimsKey)); ok {
		if claims, ok := v.(*auth.Claims); ok {
			return claims
		}
	}
	return nil
}
