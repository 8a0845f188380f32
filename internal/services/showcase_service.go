package services

import (
	"gorm.io/gorm"

	"github.com/whvsdan/theboardroom/internal/models"
	"github.com/whvsdan/theboardroom/internal/repositories"
)

// ShowcaseService serves the read-only public content: testimonials and
// gallery images.
type ShowcaseService interface {
	Testimonials(db *gorm.DB) ([]models.Testimonial, error)
	Gallery(db *gorm.DB) ([]models.GalleryImage, error)
}

type showcaseService struct {
	testimonialRepo repositories.TestimonialRepository
	galleryRepo     repositories.GalleryRepository
}

func NewShowcaseService(
	testimonialRepo repositories.TestimonialRepository,
	galleryRepo repositories.GalleryRepository,
) ShowcaseService {
	return &showcaseService{
		testimonialRepo: testimonialRepo,
		galleryRepo:     galleryRepo,
	}
}

func (s *showcaseService) Testimonials(db *gorm.DB) ([]models.Testimonial, error) {
	return s.testimonialRepo.FindAll(db)
}

func (s *showcaseService) Gallery(db *gorm.DB) ([]models.GalleryImage, error) {
	return s.galleryRepo.FindAll(db)
}
