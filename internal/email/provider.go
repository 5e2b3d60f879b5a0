package email

// Provider sends outbound email. A send is a single attempt over one
// authenticated session; callers decide what to do with a failure.
type Provider interface {
	// Send delivers a message.
	Send(msg *Message) error

	// SendWithTemplate renders a template into the message body and sends it.
	SendWithTemplate(templateName string, data TemplateData, msg *Message) error

	// Validate checks the provider configuration.
	Validate() error

	// Close releases provider resources.
	Close() error
}

// TemplateRenderer renders named templates.
type TemplateRenderer interface {
	// Render executes a template with data.
	Render(templateName string, data TemplateData) (string, error)

	// AddTemplate registers a template.
	AddTemplate(name string, template string) error

	// LoadTemplates loads templates from a directory.
	LoadTemplates(dirPath string) error
}

// ProviderFactory builds a Provider for one send session. Credentials arrive
// per request and are never stored.
type ProviderFactory func(cfg *SMTPConfig) Provider
