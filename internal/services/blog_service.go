package services

import (
	"strings"

	"gorm.io/gorm"

	"github.com/whvsdan/theboardroom/internal/models"
	"github.com/whvsdan/theboardroom/internal/repositories"
	"github.com/whvsdan/theboardroom/internal/services/dto"
	"github.com/whvsdan/theboardroom/pkg/apperrors"
)

type BlogService interface {
	ListPublished(db *gorm.DB, page, pageSize int) ([]models.BlogPost, int64, error)
	GetBySlug(db *gorm.DB, slug string) (*models.BlogPost, error)
	ListAll(db *gorm.DB, page, pageSize int) ([]models.BlogPost, int64, error)
	Create(db *gorm.DB, req *dto.BlogPostRequest) (*models.BlogPost, error)
	Update(db *gorm.DB, id string, req *dto.BlogPostRequest) (*models.BlogPost, error)
	TogglePublished(db *gorm.DB, id string) (*models.BlogPost, error)
	Delete(db *gorm.DB, id string) error
}

type blogService struct {
	repo repositories.BlogRepository
}

func NewBlogService(repo repositories.BlogRepository) BlogService {
	return &blogService{repo: repo}
}

// Slugify lowercases the title and collapses whitespace runs into single
// hyphens: "Hello World Event" -> "hello-world-event".
func Slugify(title string) string {
	return strings.Join(strings.Fields(strings.ToLower(title)), "-")
}

func (s *blogService) ListPublished(db *gorm.DB, page, pageSize int) ([]models.BlogPost, int64, error) {
	return s.repo.FindPublished(db, page, pageSize)
}

func (s *blogService) GetBySlug(db *gorm.DB, slug string) (*models.BlogPost, error) {
	post, err := s.repo.FindBySlug(db, slug)
	if err != nil {
		if apperrors.Is(err, repositories.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("blog", "Post not found")
		}
		return nil, apperrors.DatabaseError(err)
	}
	return post, nil
}

func (s *blogService) ListAll(db *gorm.DB, page, pageSize int) ([]models.BlogPost, int64, error) {
	return s.repo.FindAll(db, page, pageSize)
}

func (s *blogService) Create(db *gorm.DB, req *dto.BlogPostRequest) (*models.BlogPost, error) {
	post := &models.BlogPost{
		Title:            req.Title,
		Slug:             Slugify(req.Title),
		Excerpt:          req.Excerpt,
		Content:          req.Content,
		Published:        req.Published,
		FeaturedImageURL: req.FeaturedImageURL,
	}

	// Slug collisions are left to the unique index; the store's error text
	// is surfaced to the admin as-is.
	if err := s.repo.Create(db, post); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return post, nil
}

func (s *blogService) Update(db *gorm.DB, id string, req *dto.BlogPostRequest) (*models.BlogPost, error) {
	fields := map[string]interface{}{
		"title":              req.Title,
		"slug":               Slugify(req.Title),
		"excerpt":            req.Excerpt,
		"content":            req.Content,
		"published":          req.Published,
		"featured_image_url": req.FeaturedImageURL,
	}

	if err := s.repo.Update(db, id, fields); err != nil {
		if apperrors.Is(err, repositories.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("blog", "Post not found")
		}
		return nil, apperrors.DatabaseError(err)
	}

	return s.repo.FindByID(db, id)
}

func (s *blogService) TogglePublished(db *gorm.DB, id string) (*models.BlogPost, error) {
	post, err := s.repo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("blog", "Post not found")
		}
		return nil, apperrors.DatabaseError(err)
	}

	if err := s.repo.Update(db, id, map[string]interface{}{"published": !post.Published}); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	post.Published = !post.Published
	return post, nil
}

func (s *blogService) Delete(db *gorm.DB, id string) error {
	if err := s.repo.Delete(db, id); err != nil {
		if apperrors.Is(err, repositories.ErrRecordNotFound) {
			return apperrors.NewNotFoundError("blog", "Post not found")
		}
		return apperrors.DatabaseError(err)
	}
	return nil
}
