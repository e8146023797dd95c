package apperrors

// ErrorCode - тип для кодов ошибок
type ErrorCode string

const (
	// Ошибки входных данных
	CodeValidationFailed      ErrorCode = "VALIDATION_FAILED"
	CodeDuplicateEntity       ErrorCode = "DUPLICATE_ENTITY"
	CodeNotFound              ErrorCode = "NOT_FOUND"
	CodeTokenInvalidOrExpired ErrorCode = "TOKEN_INVALID_OR_EXPIRED"

	// Аутентификация и авторизация
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeRateLimited        ErrorCode = "RATE_LIMITED"

	// Системные ошибки
	CodeUpstreamFailure ErrorCode = "UPSTREAM_FAILURE"
	CodeInternalError   ErrorCode = "INTERNAL_ERROR"
)
