package models

import (
	"time"

	"gorm.io/gorm"
)

type Tag struct {
	ID        uint64         `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"type:varchar(100);uniqueIndex" json:"name" validate:"required,min=1,max=100"`
	Slug      string         `gorm:"type:varchar(100);uniqueIndex" json:"slug" validate:"required,min=1,max=100"`
	Articles  []Article      `gorm:"many2many:article_tags;" json:"articles,omitempty"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// FindOrCreate looks a tag up by slug and creates it when missing.
func (t *Tag) FindOrCreate(db *gorm.DB) error {
	result := db.Where("slug = ?", t.Slug).First(t)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return db.Create(t).Error
		}
		return result.Error
	}
	return nil
}
