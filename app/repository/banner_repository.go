package repository

import (
	"gorm.io/gorm"

	"github.com/tuguldure/newswire/app/models"
)

// bannerRepository implements the BannerRepository interface
type bannerRepository struct {
	db *gorm.DB
}

// NewBannerRepository creates a new banner repository instance
func NewBannerRepository(db *gorm.DB) BannerRepository {
	return &bannerRepository{db: db}
}

// GetActive returns active banners, optionally filtered by type, in
// display order.
func (r *bannerRepository) GetActive(bannerType string) ([]models.Banner, error) {
	q := r.db.Where("is_active = ?", true)
	if bannerType != "" {
		q = q.Where("type = ?", bannerType)
	}
	var banners []models.Banner
	err := q.Order("display_order ASC, created_at DESC").Find(&banners).Error
	return banners, err
}

// GetAll returns every banner for the admin listing.
func (r *bannerRepository) GetAll() ([]models.Banner, error) {
	var banners []models.Banner
	err := r.db.Order("type, display_order ASC, created_at DESC").Find(&banners).Error
	return banners, err
}

// GetByID retrieves a banner by its ID
func (r *bannerRepository) GetByID(id uint64) (*models.Banner, error) {
	var banner models.Banner
	err := r.db.First(&banner, id).Error
	if err != nil {
		return nil, err
	}
	return &banner, nil
}

// Create inserts a new banner
func (r *bannerRepository) Create(banner *models.Banner) error {
	return r.db.Create(banner).Error
}

// Update saves an existing banner
func (r *bannerRepository) Update(banner *models.Banner) error {
	return r.db.Save(banner).Error
}

// Delete removes a banner by its ID
func (r *bannerRepository) Delete(id uint64) error {
	result := r.db.Delete(&models.Banner{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Toggle flips the active flag
func (r *bannerRepository) Toggle(id uint64) error {
	result := r.db.Model(&models.Banner{}).Where("id = ?", id).
		Update("is_active", gorm.Expr("NOT is_active"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
