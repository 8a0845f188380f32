package services

import (
	"gorm.io/gorm"

	"github.com/whvsdan/theboardroom/internal/models"
	"github.com/whvsdan/theboardroom/internal/repositories"
	"github.com/whvsdan/theboardroom/internal/services/dto"
	"github.com/whvsdan/theboardroom/pkg/apperrors"
)

type MentorshipService interface {
	Submit(db *gorm.DB, req *dto.SubmitMentorshipRequest) (*models.MentorshipApplication, error)
	List(db *gorm.DB, status string, page, pageSize int) ([]models.MentorshipApplication, int64, error)
	UpdateStatus(db *gorm.DB, id string, status models.ApplicationStatus) (*models.MentorshipApplication, error)
	Delete(db *gorm.DB, id string) error
}

type mentorshipService struct {
	repo repositories.MentorshipRepository
}

func NewMentorshipService(repo repositories.MentorshipRepository) MentorshipService {
	return &mentorshipService{repo: repo}
}

func (s *mentorshipService) Submit(db *gorm.DB, req *dto.SubmitMentorshipRequest) (*models.MentorshipApplication, error) {
	app := &models.MentorshipApplication{
		FullName:        req.FullName,
		Email:           req.Email,
		Company:         req.Company,
		ExperienceLevel: req.ExperienceLevel,
		MentorshipFocus: req.MentorshipFocus,
		Bio:             req.Bio,
		Status:          models.ApplicationStatusPending,
	}

	if err := s.repo.Create(db, app); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return app, nil
}

func (s *mentorshipService) List(db *gorm.DB, status string, page, pageSize int) ([]models.MentorshipApplication, int64, error) {
	return s.repo.FindAll(db, status, page, pageSize)
}

// UpdateStatus rejects a write that would not change anything, so a double
// click on Approve issues exactly one store write.
func (s *mentorshipService) UpdateStatus(db *gorm.DB, id string, status models.ApplicationStatus) (*models.MentorshipApplication, error) {
	app, err := s.repo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("mentorship", "Application not found")
		}
		return nil, apperrors.DatabaseError(err)
	}

	if app.Status == status {
		return nil, apperrors.NewConflictError("mentorship", "Application already has status "+string(status))
	}

	if err := s.repo.UpdateStatus(db, id, status); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	app.Status = status
	return app, nil
}

func (s *mentorshipService) Delete(db *gorm.DB, id string) error {
	if err := s.repo.Delete(db, id); err != nil {
		if apperrors.Is(err, repositories.ErrRecordNotFound) {
			return apperrors.NewNotFoundError("mentorship", "Application not found")
		}
		return apperrors.DatabaseError(err)
	}
	return nil
}
