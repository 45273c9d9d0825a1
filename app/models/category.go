package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

type Category struct {
	ID           uint64         `gorm:"primaryKey" json:"id"`
	Name         string         `gorm:"type:varchar(150)" json:"name" validate:"required,min=1,max=150"`
	Slug         string         `gorm:"uniqueIndex;type:varchar(150)" json:"slug" validate:"required,min=1,max=150"`
	Description  string         `gorm:"type:text" json:"description"`
	DisplayOrder int            `gorm:"default:0" json:"display_order"`
	IsActive     bool           `gorm:"type:tinyint(1);default:1" json:"is_active"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (c *Category) Validate() error {
	v := validator.New()

	return v.Struct(c)
}
