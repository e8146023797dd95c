package email

import (
	"context"
	"sync"
)

// RecordingProvider запоминает письма вместо отправки.
// Используется в тестах и при запуске без SMTP.
type RecordingProvider struct {
	mu       sync.Mutex
	renderer TemplateRenderer
	sent     []Email
	err      error
}

func NewRecordingProvider(renderer TemplateRenderer) *RecordingProvider {
	return &RecordingProvider{renderer: renderer}
}

// FailWith заставляет все последующие отправки вернуть err
func (p *RecordingProvider) FailWith(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.err = err
}

func (p *RecordingProvider) Send(ctx context.Context, email *Email) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.sent = append(p.sent, *email)
	return nil
}

func (p *RecordingProvider) SendTemplate(ctx context.Context, to []string, subject, templateName string, data TemplateData) error {
	body := ""
	if p.renderer != nil {
		rendered, err := p.renderer.Render(templateName, data)
		if err != nil {
			return err
		}
		body = rendered
	}
	return p.Send(ctx, &Email{To: to, Subject: subject, HTMLBody: body})
}

func (p *RecordingProvider) Validate() error {
	return nil
}

// Sent возвращает копию отправленных писем
func (p *RecordingProvider) Sent() []Email {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Email(nil), p.sent...)
}
