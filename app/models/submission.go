package models

import "time"

// SubmissionCategoryID is the fixed category reader submissions land in.
const SubmissionCategoryID = 7

// Submission is a reader-submitted story draft from the public form.
type Submission struct {
	ID         uint64    `gorm:"primaryKey" json:"id"`
	CategoryID uint64    `gorm:"index" json:"category_id"`
	Name       string    `gorm:"type:varchar(150)" json:"name" validate:"required,min=1,max=150"`
	Email      string    `gorm:"type:varchar(200)" json:"email"`
	Phone      string    `gorm:"type:varchar(50)" json:"phone"`
	Title      string    `gorm:"type:varchar(255)" json:"title" validate:"required,min=1,max=255"`
	Content    string    `gorm:"type:text" json:"content" validate:"required"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}
