package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/whvsdan/theboardroom/internal/middleware"
	"github.com/whvsdan/theboardroom/internal/models"
	"github.com/whvsdan/theboardroom/internal/services"
	"github.com/whvsdan/theboardroom/internal/services/dto"
	"github.com/whvsdan/theboardroom/pkg/apperrors"
)

type BlogHandler struct {
	*BaseHandler
	blogService  services.BlogService
	mediaService services.MediaService
}

func NewBlogHandler(base *BaseHandler, blogService services.BlogService, mediaService services.MediaService) *BlogHandler {
	return &BlogHandler{
		BaseHandler:  base,
		blogService:  blogService,
		mediaService: mediaService,
	}
}

func (h *BlogHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/blog", h.ListPublished)
	r.GET("/blog/:slug", h.GetBySlug)

	admin := r.Group("/admin/blog")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(string(models.AdminRoleAdmin)))
	{
		admin.GET("", h.ListAll)
		admin.POST("", h.Create)
		admin.PUT("/:id", h.Update)
		admin.PATCH("/:id/publish", h.TogglePublished)
		admin.DELETE("/:id", h.Delete)
		admin.POST("/images", h.UploadImage)
	}
}

// ListPublished returns published posts only, newest first.
func (h *BlogHandler) ListPublished(c *gin.Context) {
	page, pageSize := ParsePagination(c)

	posts, total, err := h.blogService.ListPublished(h.GetDB(c), page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BlogListResponse{Posts: posts, Total: total})
}

func (h *BlogHandler) GetBySlug(c *gin.Context) {
	slug := c.Param("slug")

	post, err := h.blogService.GetBySlug(h.GetDB(c), slug)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *BlogHandler) ListAll(c *gin.Context) {
	page, pageSize := ParsePagination(c)

	posts, total, err := h.blogService.ListAll(h.GetDB(c), page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BlogListResponse{Posts: posts, Total: total})
}

func (h *BlogHandler) Create(c *gin.Context) {
	var req dto.BlogPostRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	post, err := h.blogService.Create(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

func (h *BlogHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req dto.BlogPostRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	post, err := h.blogService.Update(h.GetDB(c), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *BlogHandler) TogglePublished(c *gin.Context) {
	id := c.Param("id")

	post, err := h.blogService.TogglePublished(h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *BlogHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.blogService.Delete(h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// UploadImage accepts a multipart upload under the "image" field and
// returns the stored file URL for use in post content.
func (h *BlogHandler) UploadImage(c *gin.Context) {
	header, err := c.FormFile("image")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing image file: "+err.Error()))
		return
	}

	url, err := h.mediaService.UploadBlogImage(c.Request.Context(), header)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.UploadResponse{URL: url})
}
