package repositories

import (
	"gorm.io/gorm"

	"github.com/whvsdan/theboardroom/internal/models"
)

// Testimonials and gallery images have read paths only in this repo.

type TestimonialRepository interface {
	FindAll(db *gorm.DB) ([]models.Testimonial, error)
}

type testimonialRepository struct {
	CrudRepository[models.Testimonial]
}

func NewTestimonialRepository() TestimonialRepository {
	return &testimonialRepository{}
}

func (r *testimonialRepository) FindAll(db *gorm.DB) ([]models.Testimonial, error) {
	records, _, err := r.List(db, nil, ListOptions{OrderBy: "created_at"})
	return records, err
}

type GalleryRepository interface {
	FindAll(db *gorm.DB) ([]models.GalleryImage, error)
}

type galleryRepository struct {
	CrudRepository[models.GalleryImage]
}

func NewGalleryRepository() GalleryRepository {
	return &galleryRepository{}
}

func (r *galleryRepository) FindAll(db *gorm.DB) ([]models.GalleryImage, error) {
	records, _, err := r.List(db, nil, ListOptions{OrderBy: "created_at"})
	return records, err
}
