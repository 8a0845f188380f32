package services

import (
	"gorm.io/gorm"

	"github.com/whvsdan/theboardroom/internal/models"
	"github.com/whvsdan/theboardroom/internal/repositories"
	"github.com/whvsdan/theboardroom/internal/services/dto"
	"github.com/whvsdan/theboardroom/pkg/apperrors"
)

type ProgramService interface {
	ListGrouped(db *gorm.DB) ([]dto.ProgramDay, error)
	List(db *gorm.DB) ([]models.ProgramSession, error)
	Create(db *gorm.DB, req *dto.ProgramSessionRequest) (*models.ProgramSession, error)
	Update(db *gorm.DB, id string, req *dto.ProgramSessionRequest) (*models.ProgramSession, error)
	Delete(db *gorm.DB, id string) error
}

type programService struct {
	repo repositories.ProgramRepository
}

func NewProgramService(repo repositories.ProgramRepository) ProgramService {
	return &programService{repo: repo}
}

func (s *programService) List(db *gorm.DB) ([]models.ProgramSession, error) {
	return s.repo.FindAll(db)
}

// ListGrouped buckets sessions by calendar day, preserving the repository's
// chronological order inside each day.
func (s *programService) ListGrouped(db *gorm.DB) ([]dto.ProgramDay, error) {
	sessions, err := s.repo.FindAll(db)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	var days []dto.ProgramDay
	for _, session := range sessions {
		date := session.StartTime.Format("2006-01-02")
		if len(days) == 0 || days[len(days)-1].Date != date {
			days = append(days, dto.ProgramDay{Date: date})
		}
		last := &days[len(days)-1]
		last.Sessions = append(last.Sessions, session)
	}
	return days, nil
}

func (s *programService) Create(db *gorm.DB, req *dto.ProgramSessionRequest) (*models.ProgramSession, error) {
	if !req.EndTime.After(req.StartTime) {
		return nil, apperrors.NewBadRequestError("end_time must be after start_time")
	}

	session := &models.ProgramSession{
		Title:       req.Title,
		SessionType: models.SessionType(req.SessionType),
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Location:    req.Location,
		Description: req.Description,
		SpeakerName: req.SpeakerName,
	}

	if err := s.repo.Create(db, session); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return session, nil
}

func (s *programService) Update(db *gorm.DB, id string, req *dto.ProgramSessionRequest) (*models.ProgramSession, error) {
	if !req.EndTime.After(req.StartTime) {
		return nil, apperrors.NewBadRequestError("end_time must be after start_time")
	}

	fields := map[string]interface{}{
		"title":        req.Title,
		"session_type": req.SessionType,
		"start_time":   req.StartTime,
		"end_time":     req.EndTime,
		"location":     req.Location,
		"description":  req.Description,
		"speaker_name": req.SpeakerName,
	}

	if err := s.repo.Update(db, id, fields); err != nil {
		if apperrors.Is(err, repositories.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("program", "Session not found")
		}
		return nil, apperrors.DatabaseError(err)
	}

	return s.repo.FindByID(db, id)
}

func (s *programService) Delete(db *gorm.DB, id string) error {
	if err := s.repo.Delete(db, id); err != nil {
		if apperrors.Is(err, repositories.ErrRecordNotFound) {
			return apperrors.NewNotFoundError("program", "Session not found")
		}
		return apperrors.DatabaseError(err)
	}
	return nil
}
