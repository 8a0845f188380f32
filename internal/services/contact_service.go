package services

import (
	"gorm.io/gorm"

	"github.com/whvsdan/theboardroom/internal/models"
	"github.com/whvsdan/theboardroom/internal/repositories"
	"github.com/whvsdan/theboardroom/internal/services/dto"
	"github.com/whvsdan/theboardroom/pkg/apperrors"
)

type ContactService interface {
	Submit(db *gorm.DB, req *dto.SubmitContactRequest) (*models.ContactMessage, error)
	List(db *gorm.DB, status string, page, pageSize int) ([]models.ContactMessage, int64, error)
	UpdateStatus(db *gorm.DB, id string, status models.ContactStatus) error
	Delete(db *gorm.DB, id string) error
}

type contactService struct {
	repo repositories.ContactRepository
}

func NewContactService(repo repositories.ContactRepository) ContactService {
	return &contactService{repo: repo}
}

func (s *contactService) Submit(db *gorm.DB, req *dto.SubmitContactRequest) (*models.ContactMessage, error) {
	msg := &models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
		Status:  models.ContactStatusNew,
	}

	if err := s.repo.Create(db, msg); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return msg, nil
}

func (s *contactService) List(db *gorm.DB, status string, page, pageSize int) ([]models.ContactMessage, int64, error) {
	return s.repo.FindAll(db, status, page, pageSize)
}

func (s *contactService) UpdateStatus(db *gorm.DB, id string, status models.ContactStatus) error {
	if err := s.repo.UpdateStatus(db, id, status); err != nil {
		if apperrors.Is(err, repositories.ErrRecordNotFound) {
			return apperrors.NewNotFoundError("contact", "Message not found")
		}
		return apperrors.DatabaseError(err)
	}
	return nil
}

func (s *contactService) Delete(db *gorm.DB, id string) error {
	if err := s.repo.Delete(db, id); err != nil {
		if apperrors.Is(err, repositories.ErrRecordNotFound) {
			return apperrors.NewNotFoundError("contact", "Message not found")
		}
		return apperrors.DatabaseError(err)
	}
	return nil
}
