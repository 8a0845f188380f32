package repositories

import (
	"gorm.io/gorm"

	"github.com/whvsdan/theboardroom/internal/models"
)

type RegistrationRepository interface {
	Create(db *gorm.DB, reg *models.Registration) error
	FindAll(db *gorm.DB, status string, page, pageSize int) ([]models.Registration, int64, error)
	FindAllForExport(db *gorm.DB) ([]models.Registration, error)
	FindByID(db *gorm.DB, id string) (*models.Registration, error)
	Update(db *gorm.DB, id string, fields map[string]interface{}) error
	Delete(db *gorm.DB, id string) error
	Count(db *gorm.DB) (int64, error)
}

type registrationRepository struct {
	CrudRepository[models.Registration]
}

func NewRegistrationRepository() RegistrationRepository {
	return &registrationRepository{}
}

func (r *registrationRepository) FindAll(db *gorm.DB, status string, page, pageSize int) ([]models.Registration, int64, error) {
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

// FindAllForExport always serializes the whole table, oldest first.
func (r *registrationRepository) FindAllForExport(db *gorm.DB) ([]models.Registration, error) {
	records, _, err := r.List(db, nil, ListOptions{OrderBy: "created_at", Ascending: true})
	return records, err
}
