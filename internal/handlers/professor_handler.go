package handlers

import (
	"net/http"

	"phdtrack_backend/internal/services"
	"phdtrack_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ProfessorHandler struct {
	*BaseHandler
	professorService *services.ProfessorService
}

func NewProfessorHandler(base *BaseHandler, professorService *services.ProfessorService) *ProfessorHandler {
	return &ProfessorHandler{
		BaseHandler:      base,
		professorService: professorService,
	}
}

func (h *ProfessorHandler) RegisterRoutes(r *gin.RouterGroup) {
	professors := r.Group("/professors")
	{
		professors.POST("", h.CreateProfessor)
		professors.GET("", h.ListProfessors)
		professors.GET("/:professorId", h.GetProfessor)
		professors.PUT("/:professorId", h.UpdateProfessor)
		professors.DELETE("/:professorId", h.DeleteProfessor)
		professors.POST("/:professorId/schools/:schoolId", h.LinkSchool)
		professors.DELETE("/:professorId/schools/:schoolId", h.UnlinkSchool)
	}
}

func (h *ProfessorHandler) CreateProfessor(c *gin.Context) {
	var req dto.CreateProfessorRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	professor, err := h.professorService.Create(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, professor)
}

func (h *ProfessorHandler) ListProfessors(c *gin.Context) {
	skip, limit := ParseSkipLimit(c)

	professors, err := h.professorService.List(h.GetDB(c), skip, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, professors)
}

func (h *ProfessorHandler) GetProfessor(c *gin.Context) {
	id, err := ParseParamUint(c, "professorId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	professor, err := h.professorService.GetByID(h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, professor)
}

func (h *ProfessorHandler) UpdateProfessor(c *gin.Context) {
	id, err := ParseParamUint(c, "professorId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateProfessorRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	professor, err := h.professorService.Update(h.GetDB(c), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, professor)
}

func (h *ProfessorHandler) DeleteProfessor(c *gin.Context) {
	id, err := ParseParamUint(c, "professorId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.professorService.Delete(h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ProfessorHandler) LinkSchool(c *gin.Context) {
	professorID, err := ParseParamUint(c, "professorId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	schoolID, err := ParseParamUint(c, "schoolId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	professor, err := h.professorService.LinkSchool(h.GetDB(c), professorID, schoolID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, professor)
}

func (h *ProfessorHandler) UnlinkSchool(c *gin.Context) {
	professorID, err := ParseParamUint(c, "professorId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	schoolID, err := ParseParamUint(c, "schoolId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	professor, err := h.professorService.UnlinkSchool(h.GetDB(c), professorID, schoolID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, professor)
}
