package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/whvsdan/theboardroom/internal/middleware"
	"github.com/whvsdan/theboardroom/internal/models"
	"github.com/whvsdan/theboardroom/internal/services"
	"github.com/whvsdan/theboardroom/internal/services/dto"
)

type AwardHandler struct {
	*BaseHandler
	awardService services.AwardService
}

func NewAwardHandler(base *BaseHandler, awardService services.AwardService) *AwardHandler {
	return &AwardHandler{
		BaseHandler:  base,
		awardService: awardService,
	}
}

func (h *AwardHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/award-nominations", h.Submit)

	admin := r.Group("/admin/award-nominations")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(string(models.AdminRoleAdmin)))
	{
		admin.GET("", h.List)
		admin.PATCH("/:id/status", h.UpdateStatus)
		admin.DELETE("/:id", h.Delete)
	}
}

func (h *AwardHandler) Submit(c *gin.Context) {
	var req dto.SubmitNominationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	nom, err := h.awardService.Submit(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.SubmissionResponse{
		Success: true,
		Message: "Nomination received. Thank you!",
		Data:    nom,
	})
}

func (h *AwardHandler) List(c *gin.Context) {
	page, pageSize := ParsePagination(c)
	status := c.Query("status")

	noms, total, err := h.awardService.List(h.GetDB(c), status, page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"nominations": noms,
		"total":       total,
		"page":        page,
	})
}

func (h *AwardHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")

	var req dto.UpdateApplicationStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	nom, err := h.awardService.UpdateStatus(h.GetDB(c), id, models.ApplicationStatus(req.Status))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, nom)
}

func (h *AwardHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.awardService.Delete(h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
