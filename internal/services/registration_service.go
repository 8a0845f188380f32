package services

import (
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/whvsdan/theboardroom/internal/config"
	"github.com/whvsdan/theboardroom/internal/email"
	"github.com/whvsdan/theboardroom/internal/logger"
	"github.com/whvsdan/theboardroom/internal/models"
	"github.com/whvsdan/theboardroom/internal/repositories"
	"github.com/whvsdan/theboardroom/internal/services/dto"
	"github.com/whvsdan/theboardroom/pkg/apperrors"
)

type RegistrationService interface {
	Submit(db *gorm.DB, req *dto.SubmitRegistrationRequest) (*models.Registration, error)
	List(db *gorm.DB, status string, page, pageSize int) ([]models.Registration, int64, error)
	Update(db *gorm.DB, id string, req *dto.UpdateRegistrationRequest) (*models.Registration, error)
	Delete(db *gorm.DB, id string) error
	ExportCSV(db *gorm.DB) ([]byte, error)
}

type registrationService struct {
	repo   repositories.RegistrationRepository
	mailer email.Sender
}

func NewRegistrationService(repo repositories.RegistrationRepository, mailer email.Sender) RegistrationService {
	return &registrationService{repo: repo, mailer: mailer}
}

func (s *registrationService) Submit(db *gorm.DB, req *dto.SubmitRegistrationRequest) (*models.Registration, error) {
	cfg := config.GetConfig()

	reg := &models.Registration{
		FullName:        req.FullName,
		Email:           req.Email,
		Phone:           req.Phone,
		Company:         req.Company,
		JobTitle:        req.JobTitle,
		Age:             req.Age,
		Gender:          req.Gender,
		ParticipantType: req.ParticipantType,
		Workshops:       strings.Join(req.Workshops, ", "),
		TicketType:      "free",
		Status:          cfg.Registration.DefaultStatus,
	}

	if err := s.repo.Create(db, reg); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	// Ticket delivery is best effort: a mail outage must not fail the
	// registration the visitor just saw succeed.
	go func(to, name, ticket string) {
		if err := s.mailer.SendTicketConfirmation(to, name, ticket); err != nil {
			logger.WithError(err).Warn("ticket confirmation email failed", "email", to)
		}
	}(reg.Email, reg.FullName, reg.TicketType)

	return reg, nil
}

func (s *registrationService) List(db *gorm.DB, status string, page, pageSize int) ([]models.Registration, int64, error) {
	return s.repo.FindAll(db, status, page, pageSize)
}

func (s *registrationService) Update(db *gorm.DB, id string, req *dto.UpdateRegistrationRequest) (*models.Registration, error) {
	fields := map[string]interface{}{}
	if req.FullName != nil {
		fields["full_name"] = *req.FullName
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.Company != nil {
		fields["company"] = *req.Company
	}
	if req.JobTitle != nil {
		fields["job_title"] = *req.JobTitle
	}
	if req.Age != nil {
		fields["age"] = *req.Age
	}
	if req.Gender != nil {
		fields["gender"] = *req.Gender
	}
	if req.ParticipantType != nil {
		fields["participant_type"] = *req.ParticipantType
	}
	if req.Workshops != nil {
		fields["workshops"] = *req.Workshops
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}

	if len(fields) == 0 {
		return nil, apperrors.NewBadRequestError("No fields to update")
	}

	if err := s.repo.Update(db, id, fields); err != nil {
		if apperrors.Is(err, repositories.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("registrations", "Registration not found")
		}
		return nil, apperrors.DatabaseError(err)
	}

	return s.repo.FindByID(db, id)
}

func (s *registrationService) Delete(db *gorm.DB, id string) error {
	if err := s.repo.Delete(db, id); err != nil {
		if apperrors.Is(err, repositories.ErrRecordNotFound) {
			return apperrors.NewNotFoundError("registrations", "Registration not found")
		}
		return apperrors.DatabaseError(err)
	}
	return nil
}

var exportHeaders = []string{
	"Name", "Email", "Phone", "Age", "Gender", "Company",
	"Job Title", "Participant Type", "Workshops", "Status", "Date",
}

// ExportCSV serializes the full registrations table. Every field is
// double-quote wrapped and empty optional fields render as "-", matching the
// file the admin screen has always produced.
func (s *registrationService) ExportCSV(db *gorm.DB) ([]byte, error) {
	regs, err := s.repo.FindAllForExport(db)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	var b strings.Builder
	writeCSVRow(&b, exportHeaders)

	for _, reg := range regs {
		age := "-"
		if reg.Age != nil {
			age = strconv.Itoa(*reg.Age)
		}
		writeCSVRow(&b, []string{
			reg.FullName,
			reg.Email,
			reg.Phone,
			age,
			orDash(reg.Gender),
			orDash(reg.Company),
			orDash(reg.JobTitle),
			orDash(reg.ParticipantType),
			orDash(reg.Workshops),
			reg.Status,
			reg.CreatedAt.Format("1/2/2006"),
		})
	}

	// Trailing newline is omitted: N rows produce N+1 lines.
	out := strings.TrimSuffix(b.String(), "\n")
	return []byte(out), nil
}

func writeCSVRow(b *strings.Builder, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(cell, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
