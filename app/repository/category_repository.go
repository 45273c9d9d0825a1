package repository

import (
	"strconv"

	"gorm.io/gorm"

	"github.com/tuguldure/newswire/app/models"
)

// categoryRepository implements the CategoryRepository interface
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository instance
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

// GetAllWithCounts returns active categories with their published
// article counts, in display order.
func (r *categoryRepository) GetAllWithCounts() ([]CategoryWithCount, error) {
	var categories []CategoryWithCount
	err := r.db.Model(&models.Category{}).
		Select("categories.*, COUNT(articles.id) AS article_count").
		Joins("LEFT JOIN articles ON articles.category_id = categories.id AND articles.status = ? AND articles.deleted_at IS NULL", models.STATUS_PUBLISHED).
		Where("categories.is_active = ?", true).
		Group("categories.id").
		Order("categories.display_order ASC, categories.name ASC").
		Scan(&categories).Error
	return categories, err
}

// GetBySlugOrID resolves key as a slug first, then as a numeric ID.
func (r *categoryRepository) GetBySlugOrID(key string) (*models.Category, error) {
	var category models.Category
	err := r.db.Where("slug = ?", key).First(&category).Error
	if err == nil {
		return &category, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}
	id, parseErr := strconv.ParseUint(key, 10, 64)
	if parseErr != nil {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(id)
}

// GetByID retrieves a category by its ID
func (r *categoryRepository) GetByID(id uint64) (*models.Category, error) {
	var category models.Category
	err := r.db.First(&category, id).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// Create inserts a new category
func (r *categoryRepository) Create(category *models.Category) error {
	return r.db.Create(category).Error
}

// Update saves an existing category
func (r *categoryRepository) Update(category *models.Category) error {
	return r.db.Save(category).Error
}

// Delete removes a category by its ID
func (r *categoryRepository) Delete(id uint64) error {
	result := r.db.Delete(&models.Category{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SlugExists checks if a slug already exists
func (r *categoryRepository) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Category{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

// SlugExistsExceptID checks if a slug exists excluding a specific ID
func (r *categoryRepository) SlugExistsExceptID(slug string, id uint64) (bool, error) {
	var count int64
	err := r.db.Model(&models.Category{}).Where("slug = ? AND id != ?", slug, id).Count(&count).Error
	return count > 0, err
}
