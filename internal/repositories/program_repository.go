package repositories

import (
	"gorm.io/gorm"

	"github.com/whvsdan/theboardroom/internal/models"
)

type ProgramRepository interface {
	Create(db *gorm.DB, session *models.ProgramSession) error
	FindAll(db *gorm.DB) ([]models.ProgramSession, error)
	FindByID(db *gorm.DB, id string) (*models.ProgramSession, error)
	Update(db *gorm.DB, id string, fields map[string]interface{}) error
	Delete(db *gorm.DB, id string) error
}

type programRepository struct {
	CrudRepository[models.ProgramSession]
}

func NewProgramRepository() ProgramRepository {
	return &programRepository{}
}

// FindAll returns every session in chronological order; callers group by
// calendar day for display.
func (r *programRepository) FindAll(db *gorm.DB) ([]models.ProgramSession, error) {
	sessions, _, err := r.List(db, nil, ListOptions{OrderBy: "start_time", Ascending: true})
	return sessions, err
}
