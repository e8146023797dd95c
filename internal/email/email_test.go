package email

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type fakeDialer struct {
	messages []*gomail.Message
	err      error
}

func (d *fakeDialer) DialAndSend(m ...*gomail.Message) error {
	if d.err != nil {
		return d.err
	}
	d.messages = append(d.messages, m...)
	return nil
}

func newTestProvider(t *testing.T) (*GomailProvider, *fakeDialer) {
	t.Helper()
	tm, err := NewDefaultTemplateManager()
	require.NoError(t, err)

	p := NewGomailProvider(&SMTPConfig{
		Host:     "smtp.example.com",
		Port:     587,
		Username: "noreply@jits.in",
		FromName: "Jharkhand IT Solutions",
	}, tm)
	d := &fakeDialer{}
	p.dialer = d
	return p, d
}

func TestDefaultTemplates_PasswordReset(t *testing.T) {
	tm, err := NewDefaultTemplateManager()
	require.NoError(t, err)

	html, err := tm.Render(TemplatePasswordReset, TemplateData{
		"Name":      "Asha",
		"Company":   "Jharkhand IT Solutions",
		"ResetURL":  "http://localhost:3000/reset-password/abc",
		"ExpiresIn": "10 minutes",
	})
	require.NoError(t, err)

	assert.Contains(t, html, "Hello Asha")
	assert.Contains(t, html, `href="http://localhost:3000/reset-password/abc"`)
	assert.Contains(t, html, "10 minutes")
}

func TestTemplateManager_Unknown(t *testing.T) {
	_, err := NewTemplateManager().Render("missing", nil)
	assert.ErrorContains(t, err, "template not found")
}

func TestGomailProvider_SendTemplate(t *testing.T) {
	p, d := newTestProvider(t)

	err := p.SendTemplate(context.Background(), []string{"user@example.com"}, "Password Reset Request",
		TemplatePasswordReset, TemplateData{"Name": "Asha", "ResetURL": "http://x/reset-password/t"})
	require.NoError(t, err)

	require.Len(t, d.messages, 1)
	msg := d.messages[0]
	assert.Equal(t, []string{"user@example.com"}, msg.GetHeader("To"))
	assert.Equal(t, []string{"Password Reset Request"}, msg.GetHeader("Subject"))
	assert.Contains(t, msg.GetHeader("From")[0], "noreply@jits.in")
}

func TestGomailProvider_Errors(t *testing.T) {
	t.Run("dial failure propagates", func(t *testing.T) {
		p, d := newTestProvider(t)
		d.err = errors.New("connection refused")

		err := p.Send(context.Background(), &Email{To: []string{"a@b.co"}, Body: "hi"})
		assert.ErrorContains(t, err, "connection refused")
	})

	t.Run("invalid config", func(t *testing.T) {
		p := NewGomailProvider(&SMTPConfig{Port: 587, Username: "x@y.z"}, nil)
		assert.ErrorContains(t, p.Validate(), "SMTP host")
	})

	t.Run("no recipients", func(t *testing.T) {
		p, _ := newTestProvider(t)
		assert.Error(t, p.Send(context.Background(), &Email{Body: "hi"}))
	})

	t.Run("cancelled context", func(t *testing.T) {
		p, d := newTestProvider(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.ErrorIs(t, p.Send(ctx, &Email{To: []string{"a@b.co"}}), context.Canceled)
		assert.Empty(t, d.messages)
	})
}

func TestRecordingProvider(t *testing.T) {
	p := NewRecordingProvider(nil)
	require.NoError(t, p.Send(context.Background(), &Email{To: []string{"a@b.co"}, Subject: "s"}))
	assert.Len(t, p.Sent(), 1)

	p.FailWith(errors.New("smtp down"))
	assert.Error(t, p.SendTemplate(context.Background(), []string{"a@b.co"}, "s", "x", nil))
	assert.Len(t, p.Sent(), 1)
}
