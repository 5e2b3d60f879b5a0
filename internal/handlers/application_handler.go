package handlers

import (
	"net/http"

	"phdtrack_backend/internal/services"
	"phdtrack_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService *services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applicationService *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
	}
}

func (h *ApplicationHandler) RegisterRoutes(r *gin.RouterGroup) {
	applications := r.Group("/applications")
	{
		applications.POST("", h.CreateApplication)
		applications.GET("", h.ListApplications)
		applications.GET("/:applicationId", h.GetApplication)
		applications.PUT("/:applicationId", h.UpdateApplication)
		applications.DELETE("/:applicationId", h.DeleteApplication)
	}
}

func (h *ApplicationHandler) CreateApplication(c *gin.Context) {
	var req dto.CreateApplicationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	application, err := h.applicationService.Create(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, application)
}

func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	skip, limit := ParseSkipLimit(c)

	applications, err := h.applicationService.List(h.GetDB(c), skip, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, applications)
}

func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	id, err := ParseParamUint(c, "applicationId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	application, err := h.applicationService.GetByID(h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, application)
}

func (h *ApplicationHandler) UpdateApplication(c *gin.Context) {
	id, err := ParseParamUint(c, "applicationId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateApplicationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	application, err := h.applicationService.Update(c.Request.Context(), h.GetDB(c), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, application)
}

func (h *ApplicationHandler) DeleteApplication(c *gin.Context) {
	id, err := ParseParamUint(c, "applicationId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.applicationService.Delete(h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
