package contextkeys

// Используем кастомный тип, чтобы избежать коллизий
type contextKey string

const (
	// DBContextKey - ключ, по которому в gin.Context хранится *gorm.DB
	DBContextKey = contextKey("db")

	// UserIDKey и ClaimsKey заполняет AuthMiddleware
	UserIDKey = contextKey("userID")
	ClaimsKey = contextKey("claims")
)
