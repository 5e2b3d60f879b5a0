package handlers

import (
	"net/http"

	"phdtrack_backend/internal/services"
	"phdtrack_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type SchoolHandler struct {
	*BaseHandler
	schoolService *services.SchoolService
}

func NewSchoolHandler(base *BaseHandler, schoolService *services.SchoolService) *SchoolHandler {
	return &SchoolHandler{
		BaseHandler:   base,
		schoolService: schoolService,
	}
}

func (h *SchoolHandler) RegisterRoutes(r *gin.RouterGroup) {
	schools := r.Group("/schools")
	{
		schools.POST("", h.CreateSchool)
		schools.GET("", h.ListSchools)
		schools.GET("/:schoolId", h.GetSchool)
		schools.PUT("/:schoolId", h.UpdateSchool)
		schools.DELETE("/:schoolId", h.DeleteSchool)
	}
}

func (h *SchoolHandler) CreateSchool(c *gin.Context) {
	var req dto.CreateSchoolRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	school, err := h.schoolService.Create(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, school)
}

func (h *SchoolHandler) ListSchools(c *gin.Context) {
	skip, limit := ParseSkipLimit(c)

	schools, err := h.schoolService.List(h.GetDB(c), skip, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, schools)
}

func (h *SchoolHandler) GetSchool(c *gin.Context) {
	id, err := ParseParamUint(c, "schoolId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	school, err := h.schoolService.GetByID(h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, school)
}

func (h *SchoolHandler) UpdateSchool(c *gin.Context) {
	id, err := ParseParamUint(c, "schoolId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateSchoolRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	school, err := h.schoolService.Update(h.GetDB(c), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, school)
}

func (h *SchoolHandler) DeleteSchool(c *gin.Context) {
	id, err := ParseParamUint(c, "schoolId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.schoolService.Delete(h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
