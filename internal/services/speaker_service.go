package services

import (
	"gorm.io/gorm"

	"github.com/whvsdan/theboardroom/internal/models"
	"github.com/whvsdan/theboardroom/internal/repositories"
	"github.com/whvsdan/theboardroom/internal/services/dto"
	"github.com/whvsdan/theboardroom/pkg/apperrors"
)

type SpeakerService interface {
	List(db *gorm.DB) ([]models.Speaker, error)
	Create(db *gorm.DB, req *dto.SpeakerRequest) (*models.Speaker, error)
	Update(db *gorm.DB, id string, req *dto.SpeakerRequest) (*models.Speaker, error)
	Delete(db *gorm.DB, id string) error
}

type speakerService struct {
	repo repositories.SpeakerRepository
}

func NewSpeakerService(repo repositories.SpeakerRepository) SpeakerService {
	return &speakerService{repo: repo}
}

func (s *speakerService) List(db *gorm.DB) ([]models.Speaker, error) {
	return s.repo.FindAll(db)
}

func (s *speakerService) Create(db *gorm.DB, req *dto.SpeakerRequest) (*models.Speaker, error) {
	speaker := &models.Speaker{
		Name:     req.Name,
		Title:    req.Title,
		Company:  req.Company,
		Bio:      req.Bio,
		ImageURL: req.ImageURL,
	}

	if err := s.repo.Create(db, speaker); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return speaker, nil
}

func (s *speakerService) Update(db *gorm.DB, id string, req *dto.SpeakerRequest) (*models.Speaker, error) {
	fields := map[string]interface{}{
		"name":      req.Name,
		"title":     req.Title,
		"company":   req.Company,
		"bio":       req.Bio,
		"image_url": req.ImageURL,
	}

	if err := s.repo.Update(db, id, fields); err != nil {
		if apperrors.Is(err, repositories.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("speakers", "Speaker not found")
		}
		return nil, apperrors.DatabaseError(err)
	}

	return s.repo.FindByID(db, id)
}

func (s *speakerService) Delete(db *gorm.DB, id string) error {
	if err := s.repo.Delete(db, id); err != nil {
		if apperrors.Is(err, repositories.ErrRecordNotFound) {
			return apperrors.NewNotFoundError("speakers", "Speaker not found")
		}
		return apperrors.DatabaseError(err)
	}
	return nil
}
