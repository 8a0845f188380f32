package repositories

import (
	"gorm.io/gorm"

	"github.com/whvsdan/theboardroom/internal/models"
)

type MentorshipRepository interface {
	Create(db *gorm.DB, app *models.MentorshipApplication) error
	FindAll(db *gorm.DB, status string, page, pageSize int) ([]models.MentorshipApplication, int64, error)
	FindByID(db *gorm.DB, id string) (*models.MentorshipApplication, error)
	UpdateStatus(db *gorm.DB, id string, status models.ApplicationStatus) error
	Delete(db *gorm.DB, id string) error
	Count(db *gorm.DB) (int64, error)
	CountByStatus(db *gorm.DB, status models.ApplicationStatus) (int64, error)
}

type mentorshipRepository struct {
	CrudRepository[models.MentorshipApplication]
}

func NewMentorshipRepository() MentorshipRepository {
	return &mentorshipRepository{}
}

func (r *mentorshipRepository) FindAll(db *gorm.DB, status string, page, pageSize int) ([]models.MentorshipApplication, int64, error) {
	filter := map[string]interface{}{}
	if status != "" && status != "all" {
		filter["status"] = status
	}
	return r.List(db, filter, ListOptions{
		OrderBy:  "created_at",
		Page:     page,
		PageSize: pageSize,
	})
}

func (r *mentorshipRepository) UpdateStatus(db *gorm.DB, id string, status models.ApplicationStatus) error {
	return r.Update(db, id, map[string]interface{}{"status": status})
}

func (r *mentorshipRepository) CountByStatus(db *gorm.DB, status models.ApplicationStatus) (int64, error) {
	return r.CountWhere(db, map[string]interface{}{"status": status})
}
