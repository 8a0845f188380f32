package repositories

import (
	"gorm.io/gorm"

	"github.com/whvsdan/theboardroom/internal/models"
)

type SpeakerRepository interface {
	Create(db *gorm.DB, speaker *models.Speaker) error
	FindAll(db *gorm.DB) ([]models.Speaker, error)
	FindByID(db *gorm.DB, id string) (*models.Speaker, error)
	Update(db *gorm.DB, id string, fields map[string]interface{}) error
	Delete(db *gorm.DB, id string) error
	Count(db *gorm.DB) (int64, error)
}

type speakerRepository struct {
	CrudRepository[models.Speaker]
}

func NewSpeakerRepository() SpeakerRepository {
	return &speakerRepository{}
}

// FindAll returns the full roster ordered by name, the way the public
// speakers page renders it.
func (r *speakerRepository) FindAll(db *gorm.DB) ([]models.Speaker, error) {
	speakers, _, err := r.List(db, nil, ListOptions{OrderBy: "name", Ascending: true})
	return speakers, err
}
