package controllers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/tuguldure/newswire/app/models"
	"github.com/tuguldure/newswire/app/repository"
	"github.com/tuguldure/newswire/internal/pkg/env"
	"github.com/tuguldure/newswire/internal/pkg/usercontext"
)

// CommentController handles the public comment tree and the moderation
// endpoints.
type CommentController struct {
	comments repository.CommentRepository
	articles repository.ArticleRepository
}

func NewCommentController() *CommentController {
	factory := repository.GetGlobalFactory()
	return &CommentController{
		comments: factory.GetCommentRepository(),
		articles: factory.GetArticleRepository(),
	}
}

// moderationIsManual reports whether new comments start unapproved.
// Default is auto-approval.
func moderationIsManual() bool {
	return strings.EqualFold(env.GetEnv("MODERATION_MODE", "auto"), "manual")
}

// GetByArticle returns the approved comment tree for an article, built
// with one query per root.
func (cc *CommentController) GetByArticle(c *fiber.Ctx) error {
	articleID, err := strconv.ParseUint(c.Params("articleId"), 10, 64)
	if err != nil {
		return respondError(c, models.NewValidationError("Invalid article ID"))
	}

	tree, err := cc.comments.GetApprovedByArticle(articleID)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, tree)
}

// GetTree returns the same approved comment tree assembled in memory
// from a single query.
func (cc *CommentController) GetTree(c *fiber.Ctx) error {
	articleID, err := strconv.ParseUint(c.Params("articleId"), 10, 64)
	if err != nil {
		return respondError(c, models.NewValidationError("Invalid article ID"))
	}

	tree, err := cc.comments.GetApprovedTree(articleID)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, tree)
}

type commentRequest struct {
	Content   string  `json:"content"`
	ParentID  *uint64 `json:"parent_id"`
	UserName  string  `json:"user_name"`
	UserEmail string  `json:"user_email"`
}

// Create stores a comment on a published article. A logged-in caller
// posts under their account name; anonymous callers must supply one.
// Replies may only target top-level comments.
func (cc *CommentController) Create(c *fiber.Ctx) error {
	articleID, err := strconv.ParseUint(c.Params("articleId"), 10, 64)
	if err != nil {
		return respondError(c, models.NewValidationError("Invalid article ID"))
	}

	var req commentRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}

	if strings.TrimSpace(req.Content) == "" {
		return respondError(c, models.NewValidationError("Comment content is required"))
	}

	article, err := cc.articles.GetByID(articleID)
	if err != nil {
		if models.IsNotFound(err) {
			return respondError(c, models.NewNotFoundError("Article not found"))
		}
		return respondError(c, err)
	}
	if !article.IsPublished() {
		return respondError(c, models.NewNotFoundError("Article not found"))
	}

	if req.ParentID != nil {
		parent, err := cc.comments.GetByID(*req.ParentID)
		if err != nil {
			if models.IsNotFound(err) {
				return respondError(c, models.NewValidationError("Parent comment does not exist"))
			}
			return respondError(c, err)
		}
		if parent.ArticleID != article.ID {
			return respondError(c, models.NewValidationError("Parent comment belongs to a different article"))
		}
		if !parent.IsRoot() {
			return respondError(c, models.NewValidationError("Replies can only target top-level comments"))
		}
	}

	uc := usercontext.GetUserContext(c)
	userName := strings.TrimSpace(req.UserName)
	userEmail := strings.TrimSpace(req.UserEmail)
	if uc.IsLoggedIn {
		userName = uc.DisplayName()
		userEmail = uc.Email
	}
	if userName == "" {
		return respondError(c, models.NewValidationError("A name is required to comment"))
	}

	comment := &models.Comment{
		ArticleID:  article.ID,
		UserName:   userName,
		UserEmail:  userEmail,
		Content:    req.Content,
		ParentID:   req.ParentID,
		IsApproved: !moderationIsManual(),
	}
	if err := cc.comments.Create(comment); err != nil {
		return respondError(c, err)
	}

	return respondData(c, fiber.StatusCreated, comment)
}

// Like bumps the like counter and returns the new count.
func (cc *CommentController) Like(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return respondError(c, models.NewValidationError("Invalid comment ID"))
	}

	likes, err := cc.comments.Like(id)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, fiber.Map{
		"id":    id,
		"likes": likes,
	})
}

// ListAll returns every comment with its article title, for moderation.
func (cc *CommentController) ListAll(c *fiber.Ctx) error {
	comments, err := cc.comments.ListAll()
	if err != nil {
		return respondError(c, err)
	}
	if comments == nil {
		comments = []repository.CommentWithArticle{}
	}
	return respondData(c, fiber.StatusOK, comments)
}

// Approve marks a comment as approved.
func (cc *CommentController) Approve(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return respondError(c, models.NewValidationError("Invalid comment ID"))
	}

	if err := cc.comments.Approve(id); err != nil {
		return respondError(c, err)
	}
	return respondMessage(c, fiber.StatusOK, "Comment approved")
}

// Delete removes a comment and its direct replies.
func (cc *CommentController) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return respondError(c, models.NewValidationError("Invalid comment ID"))
	}

	if err := cc.comments.DeleteWithReplies(id); err != nil {
		return respondError(c, err)
	}
	return respondMessage(c, fiber.StatusOK, "Comment deleted")
}
