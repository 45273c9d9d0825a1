package models

import (
	"time"

	"gorm.io/gorm"
)

// Comment belongs to an article and optionally to a parent comment.
// The delivered tree is two levels deep: root comments plus their direct
// replies. UserName/UserEmail are free text so anonymous readers can post
// without an account.
type Comment struct {
	ID         uint64         `gorm:"primaryKey" json:"id"`
	ArticleID  uint64         `gorm:"index" json:"article_id"`
	UserName   string         `gorm:"type:varchar(150)" json:"user_name" validate:"required,min=1,max=150"`
	UserEmail  string         `gorm:"type:varchar(200)" json:"user_email"`
	Content    string         `gorm:"type:text" json:"content" validate:"required,min=1"`
	Likes      uint64         `gorm:"default:0" json:"likes"`
	ParentID   *uint64        `gorm:"index" json:"parent_id"`
	IsApproved bool           `gorm:"type:tinyint(1);default:0;index" json:"is_approved"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// IsRoot reports whether the comment is a top-level comment.
func (c *Comment) IsRoot() bool {
	return c.ParentID == nil
}
