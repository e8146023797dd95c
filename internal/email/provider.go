package email

import "context"

// Provider отправляет письма. Ошибка доставки возвращается вызывающему.
type Provider interface {
	// Send отправляет готовое письмо
	Send(ctx context.Context, email *Email) error

	// SendTemplate рендерит шаблон и отправляет письмо
	SendTemplate(ctx context.Context, to []string, subject, templateName string, data TemplateData) error

	// Validate проверяет конфигурацию провайдера
	Validate() error
}

// TemplateRenderer рендерит HTML-шаблоны писем
type TemplateRenderer interface {
	Render(templateName string, data TemplateData) (string, error)
}

// Имена встроенных шаблонов
const (
	TemplatePasswordReset = "password_reset"
)
