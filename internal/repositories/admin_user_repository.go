package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/whvsdan/theboardroom/internal/models"
)

var ErrAdminUserNotFound = errors.New("admin user not found")

type AdminUserRepository interface {
	Create(db *gorm.DB, user *models.AdminUser) error
	FindByID(db *gorm.DB, id string) (*models.AdminUser, error)
	FindByEmail(db *gorm.DB, email string) (*models.AdminUser, error)
	Count(db *gorm.DB) (int64, error)
}

type adminUserRepository struct {
	CrudRepository[models.AdminUser]
}

func NewAdminUserRepository() AdminUserRepository {
	return &adminUserRepository{}
}

func (r *adminUserRepository) FindByEmail(db *gorm.DB, email string) (*models.AdminUser, error) {
	var user models.AdminUser
	err := db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
