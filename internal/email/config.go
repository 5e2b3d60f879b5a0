package email

import "time"

// SMTPConfig holds the SMTP server configuration for one send session.
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
	UseTLS    bool
	Timeout   time.Duration
}

// DefaultConfig returns the fallback SMTP configuration.
func DefaultConfig() *SMTPConfig {
	return &SMTPConfig{
		Host:    "smtp.gmail.com",
		Port:    587,
		UseTLS:  true,
		Timeout: 30 * time.Second,
	}
}
