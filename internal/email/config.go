package email

// SMTPConfig содержит конфигурацию SMTP сервера
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

// Sender возвращает адрес отправителя, по умолчанию - SMTP логин
func (c *SMTPConfig) Sender() string {
	if c.FromEmail != "" {
		return c.FromEmail
	}
	return c.Username
}
