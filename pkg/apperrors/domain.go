package apperrors

import (
	"net/http"
)

/*
Фабрики доменных ошибок. Каждый вызов возвращает новый экземпляр,
поэтому WithDetails/WithError не затрагивают другие запросы.
*/

// Validation - некорректные или отсутствующие входные данные (400)
func Validation(domain, message string) *AppError {
	return New(CodeValidationFailed, domain, message, http.StatusBadRequest)
}

// Duplicate - запись с таким уникальным значением уже существует (400)
func Duplicate(domain, message string) *AppError {
	return New(CodeDuplicateEntity, domain, message, http.StatusBadRequest)
}

// NotFound - запись не найдена по id или slug (404)
func NotFound(domain, message string) *AppError {
	return New(CodeNotFound, domain, message, http.StatusNotFound)
}

// InvalidCredentials - неверный логин или пароль. Причина намеренно не уточняется (401)
func InvalidCredentials(message string) *AppError {
	return New(CodeInvalidCredentials, "auth", message, http.StatusUnauthorized)
}

// TokenInvalidOrExpired - токен сброса пароля не найден или истек (400)
func TokenInvalidOrExpired() *AppError {
	return New(CodeTokenInvalidOrExpired, "auth", "Password reset token is invalid or has expired.", http.StatusBadRequest)
}

// Upstream - сбой внешнего сервиса: хранилища файлов или почты (500)
func Upstream(err error, domain, message string) *AppError {
	return New(CodeUpstreamFailure, domain, message, http.StatusInternalServerError).WithError(err)
}

// RateLimited - слишком много запросов с одного адреса (429)
func RateLimited() *AppError {
	return New(CodeRateLimited, "request", "Too many requests. Please try again later.", http.StatusTooManyRequests)
}
