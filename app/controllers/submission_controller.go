package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tuguldure/newswire/app/models"
	"github.com/tuguldure/newswire/app/repository"
)

// SubmissionController handles reader story submissions.
type SubmissionController struct {
	submissions repository.SubmissionRepository
}

func NewSubmissionController() *SubmissionController {
	return &SubmissionController{
		submissions: repository.GetGlobalFactory().GetSubmissionRepository(),
	}
}

type submissionRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Create stores a reader submission from the public form.
func (sc *SubmissionController) Create(c *fiber.Ctx) error {
	var req submissionRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}

	if req.Name == "" || req.Title == "" || req.Content == "" {
		return respondError(c, models.NewValidationError("Name, title and content are required"))
	}

	submission := &models.Submission{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Title:   req.Title,
		Content: req.Content,
	}
	if err := sc.submissions.Create(submission); err != nil {
		return respondError(c, err)
	}

	return respondData(c, fiber.StatusCreated, submission)
}

// List returns all submissions, newest first.
func (sc *SubmissionController) List(c *fiber.Ctx) error {
	submissions, err := sc.submissions.List()
	if err != nil {
		return respondError(c, err)
	}
	if submissions == nil {
		submissions = []models.Submission{}
	}
	return respondData(c, fiber.StatusOK, submissions)
}
