package handlers

import (
	"net/http"

	"phdtrack_backend/internal/services"
	"phdtrack_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type EmailHandler struct {
	*BaseHandler
	emailService *services.EmailService
}

func NewEmailHandler(base *BaseHandler, emailService *services.EmailService) *EmailHandler {
	return &EmailHandler{
		BaseHandler:  base,
		emailService: emailService,
	}
}

func (h *EmailHandler) RegisterRoutes(r *gin.RouterGroup) {
	emails := r.Group("/emails")
	{
		emails.POST("", h.CreateEmail)
		emails.GET("", h.ListEmails)
		emails.GET("/:emailId", h.GetEmail)
		emails.DELETE("/:emailId", h.DeleteEmail)
		emails.POST("/:emailId/send", h.SendEmail)
		emails.POST("/generate-draft", h.GenerateDraft)
	}
}

func (h *EmailHandler) CreateEmail(c *gin.Context) {
	var req dto.CreateEmailRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	email, err := h.emailService.Create(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, email)
}

func (h *EmailHandler) ListEmails(c *gin.Context) {
	skip, limit := ParseSkipLimit(c)

	var applicationID *uint
	if v := ParseQueryInt(c, "application_id", 0); v > 0 {
		id := uint(v)
		applicationID = &id
	}

	emails, err := h.emailService.List(h.GetDB(c), applicationID, skip, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, emails)
}

func (h *EmailHandler) GetEmail(c *gin.Context) {
	id, err := ParseParamUint(c, "emailId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	email, err := h.emailService.GetByID(h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, email)
}

func (h *EmailHandler) DeleteEmail(c *gin.Context) {
	id, err := ParseParamUint(c, "emailId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.emailService.Delete(h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// SendEmail delivers a tracked email using the SMTP credentials supplied in
// the request body. Credentials are used for this one send and discarded.
func (h *EmailHandler) SendEmail(c *gin.Context) {
	id, err := ParseParamUint(c, "emailId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.SendEmailRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	result, err := h.emailService.Send(c.Request.Context(), h.GetDB(c), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *EmailHandler) GenerateDraft(c *gin.Context) {
	var req dto.GenerateDraftRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	draft, err := h.emailService.GenerateDraft(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, draft)
}
