package repository

import (
	"gorm.io/gorm"

	"github.com/tuguldure/newswire/app/models"
)

// commentRepository implements the CommentRepository interface
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new comment repository instance
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// GetApprovedByArticle returns the approved comment tree for an article:
// root comments newest-first, each with its approved replies oldest-first.
func (r *commentRepository) GetApprovedByArticle(articleID uint64) ([]CommentNode, error) {
	var roots []models.Comment
	err := r.db.Where("article_id = ? AND is_approved = ? AND parent_id IS NULL", articleID, true).
		Order("created_at DESC").Find(&roots).Error
	if err != nil {
		return nil, err
	}

	nodes := make([]CommentNode, 0, len(roots))
	for _, root := range roots {
		var replies []models.Comment
		err := r.db.Where("parent_id = ? AND is_approved = ?", root.ID, true).
			Order("created_at ASC").Find(&replies).Error
		if err != nil {
			return nil, err
		}
		if replies == nil {
			replies = []models.Comment{}
		}
		nodes = append(nodes, CommentNode{Comment: root, Replies: replies})
	}
	return nodes, nil
}

// GetApprovedTree fetches every approved comment of the article in one
// query and assembles the two-level tree in memory. Unlike the per-root
// variant it tolerates arbitrary row order from storage.
func (r *commentRepository) GetApprovedTree(articleID uint64) ([]CommentNode, error) {
	var comments []models.Comment
	err := r.db.Where("article_id = ? AND is_approved = ?", articleID, true).
		Order("created_at DESC").Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return assembleCommentTree(comments), nil
}

// assembleCommentTree distributes a flat comment set into root nodes and
// their reply lists. Two passes: register every root first, then link
// replies, so a reply that precedes its parent in the input still finds
// it. Replies whose parent is missing or is itself a reply are dropped
// silently.
func assembleCommentTree(comments []models.Comment) []CommentNode {
	nodes := make(map[uint64]*CommentNode, len(comments))
	order := make([]uint64, 0, len(comments))

	for _, comment := range comments {
		if comment.IsRoot() {
			nodes[comment.ID] = &CommentNode{Comment: comment, Replies: []models.Comment{}}
			order = append(order, comment.ID)
		}
	}

	for _, comment := range comments {
		if comment.ParentID == nil {
			continue
		}
		if parent, ok := nodes[*comment.ParentID]; ok {
			parent.Replies = append(parent.Replies, comment)
		}
	}

	tree := make([]CommentNode, 0, len(order))
	for _, id := range order {
		tree = append(tree, *nodes[id])
	}
	return tree
}

// Create inserts a new comment
func (r *commentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// GetByID retrieves a comment by its ID
func (r *commentRepository) GetByID(id uint64) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.First(&comment, id).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// Like increments the like counter by one and returns the new count.
// No deduplication; the counter is advisory.
func (r *commentRepository) Like(id uint64) (uint64, error) {
	result := r.db.Model(&models.Comment{}).Where("id = ?", id).
		UpdateColumn("likes", gorm.Expr("likes + 1"))
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}

	var comment models.Comment
	if err := r.db.Select("id", "likes").First(&comment, id).Error; err != nil {
		return 0, err
	}
	return comment.Likes, nil
}

// ListAll returns every comment, approved or not, joined with its
// article title. Moderation view.
func (r *commentRepository) ListAll() ([]CommentWithArticle, error) {
	var comments []CommentWithArticle
	err := r.db.Model(&models.Comment{}).
		Select("comments.*, articles.title AS article_title").
		Joins("LEFT JOIN articles ON articles.id = comments.article_id").
		Order("comments.created_at DESC").
		Scan(&comments).Error
	return comments, err
}

// Approve flips the approval flag
func (r *commentRepository) Approve(id uint64) error {
	result := r.db.Model(&models.Comment{}).Where("id = ?", id).
		Update("is_approved", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteWithReplies removes a comment and its direct replies in one
// transaction. Consistent with the two-level model, deeper descendants
// cannot exist.
func (r *commentRepository) DeleteWithReplies(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("parent_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Comment{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
