package dto

type CreateEmailRequest struct {
	ApplicationID uint   `json:"application_id" binding:"required"`
	Subject       string `json:"subject" binding:"required"`
	Content       string `json:"content" binding:"required"`
	Sender        string `json:"sender" validate:"omitempty,email"`
	Receiver      string `json:"receiver" binding:"required" validate:"email"`
}

// SendEmailRequest carries the SMTP credentials for a single send attempt.
// Credentials are never stored; a failed send is reported once and not retried.
type SendEmailRequest struct {
	SMTPHost string   `json:"smtp_host"`
	SMTPPort int      `json:"smtp_port"`
	Username string   `json:"username" binding:"required"`
	Password string   `json:"password" binding:"required"`
	Cc       []string `json:"cc" validate:"omitempty,dive,email"`
	Bcc      []string `json:"bcc" validate:"omitempty,dive,email"`
}

// GenerateDraftRequest fills one of the built-in outreach templates.
type GenerateDraftRequest struct {
	Template      string `json:"template" binding:"required"` // initial-contact, follow-up, application-status
	ProfessorName string `json:"professor_name" binding:"required"`
	StudentName   string `json:"student_name" binding:"required"`
	SchoolName    string `json:"school_name"`
	ProgramName   string `json:"program_name"`
	ResearchArea  string `json:"research_area"`
	Background    string `json:"background"`
	CustomMessage string `json:"custom_message"`
	ContactInfo   string `json:"contact_info"`
}

type DraftResponse struct {
	Subject string `json:"subject"`
	Content string `json:"content"`
}

// SendResult reports the outcome of a send attempt.
type SendResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
