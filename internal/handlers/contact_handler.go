package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/whvsdan/theboardroom/internal/middleware"
	"github.com/whvsdan/theboardroom/internal/models"
	"github.com/whvsdan/theboardroom/internal/services"
	"github.com/whvsdan/theboardroom/internal/services/dto"
)

type ContactHandler struct {
	*BaseHandler
	contactService services.ContactService
}

func NewContactHandler(base *BaseHandler, contactService services.ContactService) *ContactHandler {
	return &ContactHandler{
		BaseHandler:    base,
		contactService: contactService,
	}
}

func (h *ContactHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/contact-messages", h.Submit)

	admin := r.Group("/admin/contact-messages")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(string(models.AdminRoleAdmin)))
	{
		admin.GET("", h.List)
		admin.PATCH("/:id/status", h.UpdateStatus)
		admin.DELETE("/:id", h.Delete)
	}
}

func (h *ContactHandler) Submit(c *gin.Context) {
	var req dto.SubmitContactRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	msg, err := h.contactService.Submit(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.SubmissionResponse{
		Success: true,
		Message: "Message sent. We will get back to you shortly.",
		Data:    msg,
	})
}

func (h *ContactHandler) List(c *gin.Context) {
	page, pageSize := ParsePagination(c)
	status := c.Query("status")

	msgs, total, err := h.contactService.List(h.GetDB(c), status, page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"messages": msgs,
		"total":    total,
		"page":     page,
	})
}

func (h *ContactHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")

	var req dto.UpdateContactStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.contactService.UpdateStatus(h.GetDB(c), id, models.ContactStatus(req.Status)); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *ContactHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.contactService.Delete(h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
