package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/whvsdan/theboardroom/internal/middleware"
	"github.com/whvsdan/theboardroom/internal/models"
	"github.com/whvsdan/theboardroom/internal/services"
	"github.com/whvsdan/theboardroom/internal/services/dto"
)

type MentorshipHandler struct {
	*BaseHandler
	mentorshipService services.MentorshipService
}

func NewMentorshipHandler(base *BaseHandler, mentorshipService services.MentorshipService) *MentorshipHandler {
	return &MentorshipHandler{
		BaseHandler:       base,
		mentorshipService: mentorshipService,
	}
}

func (h *MentorshipHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/mentorship-applications", h.Submit)

	admin := r.Group("/admin/mentorship-applications")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(string(models.AdminRoleAdmin)))
	{
		admin.GET("", h.List)
		admin.PATCH("/:id/status", h.UpdateStatus)
		admin.DELETE("/:id", h.Delete)
	}
}

func (h *MentorshipHandler) Submit(c *gin.Context) {
	var req dto.SubmitMentorshipRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	app, err := h.mentorshipService.Submit(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.SubmissionResponse{
		Success: true,
		Message: "Application submitted! We will be in touch soon.",
		Data:    app,
	})
}

func (h *MentorshipHandler) List(c *gin.Context) {
	page, pageSize := ParsePagination(c)
	status := c.Query("status")

	apps, total, err := h.mentorshipService.List(h.GetDB(c), status, page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"applications": apps,
		"total":        total,
		"page":         page,
	})
}

func (h *MentorshipHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")

	var req dto.UpdateApplicationStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	app, err := h.mentorshipService.UpdateStatus(h.GetDB(c), id, models.ApplicationStatus(req.Status))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, app)
}

func (h *MentorshipHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.mentorshipService.Delete(h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
