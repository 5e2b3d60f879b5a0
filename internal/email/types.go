package email

// Attachment references a stored file by path; content is read at send time.
type Attachment struct {
	Name string
	Path string
}

// Message is an outbound email.
type Message struct {
	From        string
	To          []string
	Cc          []string
	Bcc         []string
	Subject     string
	Body        string
	HTMLBody    string
	Attachments []Attachment
}

// TemplateData feeds the template renderer.
type TemplateData map[string]interface{}
