package repositories

import (
	"mindwrite-api/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	ExistsByUsername(username string) (bool, error)
	GetAll() ([]models.User, error)
	Update(user *models.User) error
	Deactivate(user *models.User) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	return &user, err
}

func (r *userRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.Where("username = ?", username).First(&user).Error
	return &user, err
}

// ExistsByUsername includes soft-deleted rows: a deactivated account still
// owns its username.
func (r *userRepository) ExistsByUsername(username string) (bool, error) {
	var count int64
	err := r.db.Unscoped().Model(&models.User{}).
		Where("username = ?", username).
		Count(&count).Error
	return count > 0, err
}

func (r *userRepository) GetAll() ([]models.User, error) {
	var users []models.User
	err := r.db.Order("id asc").Find(&users).Error
	return users, err
}

func (r *userRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// Deactivate marks the account inactive and stamps the soft-delete column.
func (r *userRepository) Deactivate(user *models.User) error {
	if err := r.db.Model(user).Update("is_active", false).Error; err != nil {
		return err
	}
	return r.db.Delete(user).Error
}
