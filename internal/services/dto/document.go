package dto

// CreateDocumentRequest is bound from the multipart upload form; the file
// itself travels separately.
type CreateDocumentRequest struct {
	ApplicationID uint   `form:"application_id" json:"application_id" binding:"required"`
	Name          string `form:"name" json:"name" binding:"required"`
	Type          string `form:"type" json:"type" binding:"required" validate:"is-document-type"`
}
