package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/whvsdan/theboardroom/internal/middleware"
	"github.com/whvsdan/theboardroom/internal/models"
	"github.com/whvsdan/theboardroom/internal/services"
	"github.com/whvsdan/theboardroom/internal/services/dto"
)

type ProgramHandler struct {
	*BaseHandler
	programService services.ProgramService
}

func NewProgramHandler(base *BaseHandler, programService services.ProgramService) *ProgramHandler {
	return &ProgramHandler{
		BaseHandler:    base,
		programService: programService,
	}
}

func (h *ProgramHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/program", h.ListGrouped)

	admin := r.Group("/admin/program")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(string(models.AdminRoleAdmin)))
	{
		admin.GET("", h.List)
		admin.POST("", h.Create)
		admin.PUT("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
	}
}

// ListGrouped returns the schedule as day buckets for the public agenda page.
func (h *ProgramHandler) ListGrouped(c *gin.Context) {
	days, err := h.programService.ListGrouped(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"days": days})
}

func (h *ProgramHandler) List(c *gin.Context) {
	sessions, err := h.programService.List(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

func (h *ProgramHandler) Create(c *gin.Context) {
	var req dto.ProgramSessionRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	session, err := h.programService.Create(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, session)
}

func (h *ProgramHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req dto.ProgramSessionRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	session, err := h.programService.Update(h.GetDB(c), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

func (h *ProgramHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.programService.Delete(h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
