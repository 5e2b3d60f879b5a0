package handlers

import (
	"net/http"

	"phdtrack_backend/internal/config"
	"phdtrack_backend/internal/services"
	"phdtrack_backend/internal/services/dto"
	"phdtrack_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type DocumentHandler struct {
	*BaseHandler
	documentService *services.DocumentService
}

func NewDocumentHandler(base *BaseHandler, documentService *services.DocumentService) *DocumentHandler {
	return &DocumentHandler{
		BaseHandler:     base,
		documentService: documentService,
	}
}

func (h *DocumentHandler) RegisterRoutes(r *gin.RouterGroup) {
	documents := r.Group("/documents")
	{
		documents.POST("", h.UploadDocument)
		documents.GET("", h.ListDocuments)
		documents.GET("/:documentId", h.GetDocument)
		documents.GET("/:documentId/download", h.DownloadDocument)
		documents.DELETE("/:documentId", h.DeleteDocument)
	}
}

// UploadDocument accepts a multipart form with the file under "file" plus the
// application_id, name and type fields.
func (h *DocumentHandler) UploadDocument(c *gin.Context) {
	var req dto.CreateDocumentRequest
	if !h.BindAndValidate_Form(c, &req) {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing uploaded file: "+err.Error()))
		return
	}

	if cfg := config.AppConfig; cfg != nil && fileHeader.Size > cfg.Upload.MaxSize {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Uploaded file exceeds the size limit"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")

	document, err := h.documentService.Upload(
		c.Request.Context(), h.GetDB(c), &req, fileHeader.Filename, file, contentType)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, document)
}

func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	skip, limit := ParseSkipLimit(c)

	var applicationID *uint
	if v := ParseQueryInt(c, "application_id", 0); v > 0 {
		id := uint(v)
		applicationID = &id
	}

	documents, err := h.documentService.List(h.GetDB(c), applicationID, skip, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, documents)
}

func (h *DocumentHandler) GetDocument(c *gin.Context) {
	id, err := ParseParamUint(c, "documentId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	document, err := h.documentService.GetByID(h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, document)
}

func (h *DocumentHandler) DownloadDocument(c *gin.Context) {
	id, err := ParseParamUint(c, "documentId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	document, reader, err := h.documentService.Download(c.Request.Context(), h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	defer reader.Close()

	c.Header("Content-Disposition", `attachment; filename="`+document.Name+`"`)
	c.DataFromReader(http.StatusOK, -1, "application/octet-stream", reader, nil)
}

func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	id, err := ParseParamUint(c, "documentId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.documentService.Delete(c.Request.Context(), h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
