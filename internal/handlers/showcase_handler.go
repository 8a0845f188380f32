package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/whvsdan/theboardroom/internal/services"
)

// ShowcaseHandler serves the read-only testimonial and gallery content
// used by the public landing pages.
type ShowcaseHandler struct {
	*BaseHandler
	showcaseService services.ShowcaseService
}

func NewShowcaseHandler(base *BaseHandler, showcaseService services.ShowcaseService) *ShowcaseHandler {
	return &ShowcaseHandler{
		BaseHandler:     base,
		showcaseService: showcaseService,
	}
}

func (h *ShowcaseHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/testimonials", h.Testimonials)
	r.GET("/gallery", h.Gallery)
}

func (h *ShowcaseHandler) Testimonials(c *gin.Context) {
	items, err := h.showcaseService.Testimonials(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"testimonials": items})
}

func (h *ShowcaseHandler) Gallery(c *gin.Context) {
	items, err := h.showcaseService.Gallery(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"images": items})
}
