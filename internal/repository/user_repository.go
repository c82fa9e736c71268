package repository

import (
	"github.com/simpledrinkmaker/sdm-server/internal/models"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(id uint64) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByLoginID finds a user by username or email. Both columns are unique,
// so at most one row can match.
func (r *GormUserRepository) FindByLoginID(loginID string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ? OR email = ?", loginID, loginID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByUUID finds a user by its stable UUID
func (r *GormUserRepository) FindByUUID(userUUID string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("user_uuid = ?", userUUID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// ExistsByUsernameOrEmail checks both unique columns in one query
func (r *GormUserRepository) ExistsByUsernameOrEmail(username, email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdatePassword replaces the stored password hash for a user
func (r *GormUserRepository) UpdatePassword(userID uint64, passwordHash string) error {
	return r.db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("password_hash", passwordHash).Error
}
