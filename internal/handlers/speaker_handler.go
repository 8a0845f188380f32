package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/whvsdan/theboardroom/internal/middleware"
	"github.com/whvsdan/theboardroom/internal/models"
	"github.com/whvsdan/theboardroom/internal/services"
	"github.com/whvsdan/theboardroom/internal/services/dto"
)

type SpeakerHandler struct {
	*BaseHandler
	speakerService services.SpeakerService
}

func NewSpeakerHandler(base *BaseHandler, speakerService services.SpeakerService) *SpeakerHandler {
	return &SpeakerHandler{
		BaseHandler:    base,
		speakerService: speakerService,
	}
}

func (h *SpeakerHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/speakers", h.List)

	admin := r.Group("/admin/speakers")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(string(models.AdminRoleAdmin)))
	{
		admin.POST("", h.Create)
		admin.PUT("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
	}
}

// List returns all speakers ordered by name for the public page.
func (h *SpeakerHandler) List(c *gin.Context) {
	speakers, err := h.speakerService.List(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"speakers": speakers})
}

func (h *SpeakerHandler) Create(c *gin.Context) {
	var req dto.SpeakerRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	speaker, err := h.speakerService.Create(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, speaker)
}

func (h *SpeakerHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req dto.SpeakerRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	speaker, err := h.speakerService.Update(h.GetDB(c), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, speaker)
}

func (h *SpeakerHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.speakerService.Delete(h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
