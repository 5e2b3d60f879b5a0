package email

import (
	"crypto/tls"
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTPProvider implements Provider on top of gomail.
type SMTPProvider struct {
	config   *SMTPConfig
	renderer TemplateRenderer
}

func NewSMTPProvider(config *SMTPConfig, renderer TemplateRenderer) *SMTPProvider {
	return &SMTPProvider{
		config:   config,
		renderer: renderer,
	}
}

// Send delivers the message in a single dial-and-send attempt.
func (p *SMTPProvider) Send(msg *Message) error {
	if err := p.Validate(); err != nil {
		return err
	}

	m := gomail.NewMessage()

	from := msg.From
	if from == "" {
		from = p.config.FromEmail
	}
	m.SetHeader("From", from)
	m.SetHeader("To", msg.To...)
	if len(msg.Cc) > 0 {
		m.SetHeader("Cc", msg.Cc...)
	}
	if len(msg.Bcc) > 0 {
		m.SetHeader("Bcc", msg.Bcc...)
	}
	m.SetHeader("Subject", msg.Subject)

	if msg.HTMLBody != "" {
		m.SetBody("text/html", msg.HTMLBody)
	} else {
		m.SetBody("text/plain", msg.Body)
	}

	for _, attachment := range msg.Attachments {
		if attachment.Name != "" {
			m.Attach(attachment.Path, gomail.Rename(attachment.Name))
		} else {
			m.Attach(attachment.Path)
		}
	}

	d := gomail.NewDialer(p.config.Host, p.config.Port, p.config.Username, p.config.Password)
	if p.config.UseTLS {
		d.TLSConfig = &tls.Config{ServerName: p.config.Host}
	}

	return d.DialAndSend(m)
}

// SendWithTemplate renders the named template into the body before sending.
func (p *SMTPProvider) SendWithTemplate(templateName string, data TemplateData, msg *Message) error {
	if p.renderer == nil {
		return fmt.Errorf("template renderer is not configured")
	}

	body, err := p.renderer.Render(templateName, data)
	if err != nil {
		return fmt.Errorf("failed to render template: %w", err)
	}

	msg.Body = body
	return p.Send(msg)
}

// Validate checks the SMTP configuration.
func (p *SMTPProvider) Validate() error {
	if p.config.Host == "" {
		return fmt.Errorf("SMTP host is required")
	}
	if p.config.Port <= 0 || p.config.Port > 65535 {
		return fmt.Errorf("invalid SMTP port: %d", p.config.Port)
	}
	if p.config.Username == "" || p.config.Password == "" {
		return fmt.Errorf("SMTP credentials are required")
	}
	return nil
}

// Close is a no-op; gomail dials per send.
func (p *SMTPProvider) Close() error {
	return nil
}
