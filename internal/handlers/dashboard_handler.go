package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/whvsdan/theboardroom/internal/middleware"
	"github.com/whvsdan/theboardroom/internal/models"
	"github.com/whvsdan/theboardroom/internal/services"
)

type DashboardHandler struct {
	*BaseHandler
	dashboardService services.DashboardService
}

func NewDashboardHandler(base *BaseHandler, dashboardService services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		BaseHandler:      base,
		dashboardService: dashboardService,
	}
}

func (h *DashboardHandler) RegisterRoutes(r *gin.RouterGroup) {
	admin := r.Group("/admin/dashboard")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(string(models.AdminRoleAdmin)))
	{
		admin.GET("", h.Metrics)
	}
}

func (h *DashboardHandler) Metrics(c *gin.Context) {
	metrics, err := h.dashboardService.Metrics(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, metrics)
}
