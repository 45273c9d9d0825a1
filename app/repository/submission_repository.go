package repository

import (
	"gorm.io/gorm"

	"github.com/tuguldure/newswire/app/models"
)

// submissionRepository implements the SubmissionRepository interface
type submissionRepository struct {
	db *gorm.DB
}

// NewSubmissionRepository creates a new submission repository instance
func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

// Create stores a reader submission
func (r *submissionRepository) Create(submission *models.Submission) error {
	if submission.CategoryID == 0 {
		submission.CategoryID = models.SubmissionCategoryID
	}
	return r.db.Create(submission).Error
}

// List returns all submissions, newest first
func (r *submissionRepository) List() ([]models.Submission, error) {
	var submissions []models.Submission
	err := r.db.Order("created_at DESC").Find(&submissions).Error
	return submissions, err
}
