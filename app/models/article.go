package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

const (
	STATUS_DRAFT     = "draft"
	STATUS_PUBLISHED = "published"
)

// Featured articles occupy one of five exclusive homepage slots.
const (
	FEATURED_RANK_MIN = 1
	FEATURED_RANK_MAX = 5
)

// Article is a news story. FeaturedRank is nil for regular articles and
// 1..5 for articles pinned to a homepage slot; at most one published
// article holds a given slot at a time.
type Article struct {
	ID           uint64         `gorm:"primaryKey" json:"id"`
	Title        string         `gorm:"type:varchar(255)" json:"title" validate:"required,min=1,max=255"`
	Slug         string         `gorm:"uniqueIndex;type:varchar(255)" json:"slug" validate:"required,min=1,max=255"`
	Excerpt      string         `gorm:"type:text" json:"excerpt"`
	Content      string         `gorm:"type:longtext" json:"content" validate:"required"`
	CoverImage   string         `gorm:"type:varchar(255);default:null" json:"cover_image" validate:"max=255"`
	CategoryID   uint64         `gorm:"index" json:"category_id" validate:"required"`
	Category     *Category      `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	AuthorID     uint64         `gorm:"index" json:"author_id"`
	Author       *User          `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Status       string         `gorm:"type:varchar(20);default:'draft';index" json:"status" validate:"oneof=draft published"`
	IsBreaking   bool           `gorm:"type:tinyint(1);default:0" json:"is_breaking"`
	FeaturedRank *int           `gorm:"column:is_featured;index" json:"is_featured" validate:"omitempty,min=1,max=5"`
	Views        uint64         `gorm:"default:0" json:"views"`
	Tags         []Tag          `gorm:"many2many:article_tags" json:"tags,omitempty"`
	PublishedAt  *time.Time     `json:"published_at"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (a *Article) Validate() error {
	v := validator.New()

	return v.Struct(a)
}

// IsPublished reports whether the article is visible to readers.
func (a *Article) IsPublished() bool {
	return a.Status == STATUS_PUBLISHED
}

// ApplyStatusChange sets the status and stamps PublishedAt on the first
// transition to published. The stamp survives unpublishing and is never
// renewed on a later re-publish.
func (a *Article) ApplyStatusChange(status string, now time.Time) {
	if status == STATUS_PUBLISHED && a.PublishedAt == nil {
		a.PublishedAt = &now
	}
	a.Status = status
}

// ClaimsFeaturedSlot reports whether saving the article must evict the
// current occupant of its slot. Only published articles hold slots.
func (a *Article) ClaimsFeaturedSlot() bool {
	return a.FeaturedRank != nil && a.IsPublished()
}

// ValidFeaturedRank reports whether rank is nil or a valid slot number.
func ValidFeaturedRank(rank *int) bool {
	if rank == nil {
		return true
	}
	return *rank >= FEATURED_RANK_MIN && *rank <= FEATURED_RANK_MAX
}
