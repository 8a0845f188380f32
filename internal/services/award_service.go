package services

import (
	"gorm.io/gorm"

	"github.com/whvsdan/theboardroom/internal/models"
	"github.com/whvsdan/theboardroom/internal/repositories"
	"github.com/whvsdan/theboardroom/internal/services/dto"
	"github.com/whvsdan/theboardroom/pkg/apperrors"
)

type AwardService interface {
	Submit(db *gorm.DB, req *dto.SubmitNominationRequest) (*models.AwardNomination, error)
	List(db *gorm.DB, status string, page, pageSize int) ([]models.AwardNomination, int64, error)
	UpdateStatus(db *gorm.DB, id string, status models.ApplicationStatus) (*models.AwardNomination, error)
	Delete(db *gorm.DB, id string) error
}

type awardService struct {
	repo repositories.AwardRepository
}

func NewAwardService(repo repositories.AwardRepository) AwardService {
	return &awardService{repo: repo}
}

func (s *awardService) Submit(db *gorm.DB, req *dto.SubmitNominationRequest) (*models.AwardNomination, error) {
	nomination := &models.AwardNomination{
		NomineeName:    req.NomineeName,
		NomineeEmail:   req.NomineeEmail,
		NominatorName:  req.NominatorName,
		NominatorEmail: req.NominatorEmail,
		Category:       req.Category,
		Reason:         req.Reason,
		Status:         models.ApplicationStatusPending,
	}

	if err := s.repo.Create(db, nomination); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return nomination, nil
}

func (s *awardService) List(db *gorm.DB, status string, page, pageSize int) ([]models.AwardNomination, int64, error) {
	return s.repo.FindAll(db, status, page, pageSize)
}

func (s *awardService) UpdateStatus(db *gorm.DB, id string, status models.ApplicationStatus) (*models.AwardNomination, error) {
	nomination, err := s.repo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("awards", "Nomination not found")
		}
		return nil, apperrors.DatabaseError(err)
	}

	if nomination.Status == status {
		return nil, apperrors.NewConflictError("awards", "Nomination already has status "+string(status))
	}

	if err := s.repo.UpdateStatus(db, id, status); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	nomination.Status = status
	return nomination, nil
}

func (s *awardService) Delete(db *gorm.DB, id string) error {
	if err := s.repo.Delete(db, id); err != nil {
		if apperrors.Is(err, repositories.ErrRecordNotFound) {
			return apperrors.NewNotFoundError("awards", "Nomination not found")
		}
		return apperrors.DatabaseError(err)
	}
	return nil
}
