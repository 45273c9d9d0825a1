package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

const (
	BANNER_TYPE_VERTICAL   = "vertical"
	BANNER_TYPE_HORIZONTAL = "horizontal"
)

type Banner struct {
	ID           uint64         `gorm:"primaryKey" json:"id"`
	Title        string         `gorm:"type:varchar(255)" json:"title" validate:"required,min=1,max=255"`
	Type         string         `gorm:"type:varchar(20);index" json:"type" validate:"oneof=vertical horizontal"`
	ImageURL     string         `gorm:"type:varchar(255)" json:"image_url" validate:"required,max=255"`
	LinkURL      string         `gorm:"type:varchar(255);default:null" json:"link_url" validate:"max=255"`
	DisplayOrder int            `gorm:"default:0" json:"display_order"`
	IsActive     bool           `gorm:"type:tinyint(1);default:1" json:"is_active"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (b *Banner) Validate() error {
	v := validator.New()
	return v.Struct(b)
}

// ValidBannerType reports whether t is one of the closed set of banner types.
func ValidBannerType(t string) bool {
	return t == BANNER_TYPE_VERTICAL || t == BANNER_TYPE_HORIZONTAL
}
