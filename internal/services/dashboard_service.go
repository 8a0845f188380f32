package services

import (
	"gorm.io/gorm"

	"github.com/whvsdan/theboardroom/internal/models"
	"github.com/whvsdan/theboardroom/internal/repositories"
	"github.com/whvsdan/theboardroom/internal/services/dto"
	"github.com/whvsdan/theboardroom/pkg/apperrors"
)

type DashboardService interface {
	Metrics(db *gorm.DB) (*dto.DashboardMetrics, error)
}

type dashboardService struct {
	registrationRepo repositories.RegistrationRepository
	mentorshipRepo   repositories.MentorshipRepository
	awardRepo        repositories.AwardRepository
	speakerRepo      repositories.SpeakerRepository
}

func NewDashboardService(
	registrationRepo repositories.RegistrationRepository,
	mentorshipRepo repositories.MentorshipRepository,
	awardRepo repositories.AwardRepository,
	speakerRepo repositories.SpeakerRepository,
) DashboardService {
	return &dashboardService{
		registrationRepo: registrationRepo,
		mentorshipRepo:   mentorshipRepo,
		awardRepo:        awardRepo,
		speakerRepo:      speakerRepo,
	}
}

func (s *dashboardService) Metrics(db *gorm.DB) (*dto.DashboardMetrics, error) {
	metrics := &dto.DashboardMetrics{}

	var err error
	if metrics.TotalRegistrations, err = s.registrationRepo.Count(db); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	if metrics.TotalMentorshipApplications, err = s.mentorshipRepo.Count(db); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	if metrics.TotalAwardNominations, err = s.awardRepo.Count(db); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	if metrics.TotalSpeakers, err = s.speakerRepo.Count(db); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	pendingMentorship, err := s.mentorshipRepo.CountByStatus(db, models.ApplicationStatusPending)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	pendingAwards, err := s.awardRepo.CountByStatus(db, models.ApplicationStatusPending)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	metrics.PendingApplications = pendingMentorship + pendingAwards

	return metrics, nil
}
