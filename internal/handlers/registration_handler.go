package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/whvsdan/theboardroom/internal/middleware"
	"github.com/whvsdan/theboardroom/internal/models"
	"github.com/whvsdan/theboardroom/internal/services"
	"github.com/whvsdan/theboardroom/internal/services/dto"
)

type RegistrationHandler struct {
	*BaseHandler
	registrationService services.RegistrationService
}

func NewRegistrationHandler(base *BaseHandler, registrationService services.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{
		BaseHandler:         base,
		registrationService: registrationService,
	}
}

func (h *RegistrationHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/registrations", h.Submit)

	admin := r.Group("/admin/registrations")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(string(models.AdminRoleAdmin)))
	{
		admin.GET("", h.List)
		admin.GET("/export", h.ExportCSV)
		admin.PUT("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
	}
}

// Submit handles the public registration form.
func (h *RegistrationHandler) Submit(c *gin.Context) {
	var req dto.SubmitRegistrationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	reg, err := h.registrationService.Submit(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.SubmissionResponse{
		Success: true,
		Message: "Registration successful! Check your email for your ticket.",
		Data:    reg,
	})
}

func (h *RegistrationHandler) List(c *gin.Context) {
	page, pageSize := ParsePagination(c)
	status := c.Query("status")

	regs, total, err := h.registrationService.List(h.GetDB(c), status, page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.RegistrationListResponse{
		Registrations: regs,
		Total:         total,
	})
}

func (h *RegistrationHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req dto.UpdateRegistrationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	reg, err := h.registrationService.Update(h.GetDB(c), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, reg)
}

func (h *RegistrationHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.registrationService.Delete(h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ExportCSV streams the full registrations table as a CSV download.
func (h *RegistrationHandler) ExportCSV(c *gin.Context) {
	data, err := h.registrationService.ExportCSV(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", `attachment; filename="registrations.csv"`)
	c.Data(http.StatusOK, "text/csv", data)
}
