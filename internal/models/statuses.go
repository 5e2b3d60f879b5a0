package models

// ApplicationStatus is the lifecycle stage of an application.
// The column stays a plain string and transitions are not restricted;
// only the value set is validated at the API boundary.
type ApplicationStatus string

const (
	ApplicationStatusPreparing    ApplicationStatus = "preparing"
	ApplicationStatusSubmitted    ApplicationStatus = "submitted"
	ApplicationStatusInterviewing ApplicationStatus = "interviewing"
	ApplicationStatusAdmitted     ApplicationStatus = "admitted"
	ApplicationStatusRejected     ApplicationStatus = "rejected"
)

// DocumentType tags a stored document.
type DocumentType string

const (
	DocumentTypeCV                   DocumentType = "cv"
	DocumentTypePersonalStatement    DocumentType = "personal-statement"
	DocumentTypeRecommendationLetter DocumentType = "recommendation-letter"
	DocumentTypeTranscript           DocumentType = "transcript"
	DocumentTypeOther                DocumentType = "other"
)

// Notification type tags.
const (
	NotificationTypeDeadline     = "deadline"
	NotificationTypeEmailReply   = "email-reply"
	NotificationTypeStatusChange = "status-change"
)
