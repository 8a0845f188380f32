package repositories

import (
	"gorm.io/gorm"

	"github.com/whvsdan/theboardroom/internal/models"
)

type ContactRepository interface {
	Create(db *gorm.DB, msg *models.ContactMessage) error
	FindAll(db *gorm.DB, status string, page, pageSize int) ([]models.ContactMessage, int64, error)
	FindByID(db *gorm.DB, id string) (*models.ContactMessage, error)
	UpdateStatus(db *gorm.DB, id string, status models.ContactStatus) error
	Delete(db *gorm.DB, id string) error
}

type contactRepository struct {
	CrudRepository[models.ContactMessage]
}

func NewContactRepository() ContactRepository {
	return &contactRepository{}
}

func (r *contactRepository) FindAll(db *gorm.DB, status string, page, pageSize int) ([]models.ContactMessage, int64, error) {
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

func (r *contactRepository) UpdateStatus(db *gorm.DB, id string, status models.ContactStatus) error {
	return r.Update(db, id, map[string]interface{}{"status": status})
}
