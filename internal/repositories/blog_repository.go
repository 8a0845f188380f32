package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/whvsdan/theboardroom/internal/models"
)

type BlogRepository interface {
	Create(db *gorm.DB, post *models.BlogPost) error
	FindAll(db *gorm.DB, page, pageSize int) ([]models.BlogPost, int64, error)
	FindPublished(db *gorm.DB, page, pageSize int) ([]models.BlogPost, int64, error)
	FindByID(db *gorm.DB, id string) (*models.BlogPost, error)
	FindBySlug(db *gorm.DB, slug string) (*models.BlogPost, error)
	Update(db *gorm.DB, id string, fields map[string]interface{}) error
	Delete(db *gorm.DB, id string) error
}

type blogRepository struct {
	CrudRepository[models.BlogPost]
}

func NewBlogRepository() BlogRepository {
	return &blogRepository{}
}

func (r *blogRepository) FindAll(db *gorm.DB, page, pageSize int) ([]models.BlogPost, int64, error) {
	return r.List(db, nil, ListOptions{
		OrderBy:  "created_at",
		Page:     page,
		PageSize: pageSize,
	})
}

func (r *blogRepository) FindPublished(db *gorm.DB, page, pageSize int) ([]models.BlogPost, int64, error) {
	return r.List(db, map[string]interface{}{"published": true}, ListOptions{
		OrderBy:  "created_at",
		Page:     page,
		PageSize: pageSize,
	})
}

// FindBySlug resolves a published post for the public blog detail page.
func (r *blogRepository) FindBySlug(db *gorm.DB, slug string) (*models.BlogPost, error) {
	var post models.BlogPost
	err := db.Where("slug = ? AND published = ?", slug, true).First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &post, nil
}
