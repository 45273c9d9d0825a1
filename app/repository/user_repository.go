package repository

import (
	"gorm.io/gorm"

	"github.com/tuguldure/newswire/app/models"
)

// userRepository implements the UserRepository interface
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository instance
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create creates a new user in the database
func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// GetByID retrieves a user by their ID
func (r *userRepository) GetByID(id uint64) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by their email address
func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UsernameOrEmailExists checks whether either credential is taken.
func (r *userRepository) UsernameOrEmailExists(username, email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).
		Where("username = ? OR email = ?", username, email).Count(&count).Error
	return count > 0, err
}

// UsernameOrEmailExistsExceptID checks whether either credential is
// taken by a different user.
func (r *userRepository) UsernameOrEmailExistsExceptID(username, email string, id uint64) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).
		Where("(username = ? OR email = ?) AND id != ?", username, email, id).Count(&count).Error
	return count > 0, err
}

// List returns users filtered by role and/or a search term over name,
// email and username, newest first.
func (r *userRepository) List(role, search string) ([]models.User, error) {
	q := r.db.Model(&models.User{})
	if role != "" {
		q = q.Where("role = ?", role)
	}
	if search != "" {
		like := "%" + search + "%"
		q = q.Where("(full_name LIKE ? OR email LIKE ? OR username LIKE ?)", like, like, like)
	}
	var users []models.User
	err := q.Order("created_at DESC").Find(&users).Error
	return users, err
}

// Update saves an existing user
func (r *userRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// UpdatePassword replaces the stored password hash
func (r *userRepository) UpdatePassword(id uint64, hashedPassword string) error {
	result := r.db.Model(&models.User{}).Where("id = ?", id).
		Update("password", hashedPassword)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a user by their ID
func (r *userRepository) Delete(id uint64) error {
	result := r.db.Delete(&models.User{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// RoleStats counts users per role.
func (r *userRepository) RoleStats() (*models.RoleStats, error) {
	var stats models.RoleStats
	err := r.db.Model(&models.User{}).
		Select("COUNT(*) AS total, "+
			"SUM(CASE WHEN role = ? THEN 1 ELSE 0 END) AS admins, "+
			"SUM(CASE WHEN role = ? THEN 1 ELSE 0 END) AS editors, "+
			"SUM(CASE WHEN role = ? THEN 1 ELSE 0 END) AS authors",
			models.ROLE_ADMIN, models.ROLE_EDITOR, models.ROLE_AUTHOR).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
