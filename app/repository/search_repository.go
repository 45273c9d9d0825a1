package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tuguldure/newswire/app/models"
)

// searchRepository implements the SearchRepository interface
type searchRepository struct {
	db *gorm.DB
}

// NewSearchRepository creates a new search repository instance
func NewSearchRepository(db *gorm.DB) SearchRepository {
	return &searchRepository{db: db}
}

func (r *searchRepository) applyFilter(q *gorm.DB, filter SearchFilter, like string) *gorm.DB {
	q = q.Where("articles.status = ?", models.STATUS_PUBLISHED).
		Where("(articles.title LIKE ? OR articles.excerpt LIKE ? OR articles.content LIKE ?)", like, like, like)
	if filter.CategorySlug != "" {
		q = q.Joins("JOIN categories ON categories.id = articles.category_id").
			Where("categories.slug = ?", filter.CategorySlug)
	}
	return q
}

// Search matches published articles against the query over title,
// excerpt and content. Title hits rank before excerpt hits, which rank
// before content hits; ties break on publish date.
func (r *searchRepository) Search(filter SearchFilter) ([]models.Article, int64, error) {
	like := "%" + filter.Query + "%"

	var total int64
	countQuery := r.applyFilter(r.db.Model(&models.Article{}), filter, like)
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var articles []models.Article
	err := r.applyFilter(r.db.Model(&models.Article{}), filter, like).
		Preload("Category").Preload("Author").
		Clauses(clause.OrderBy{Expression: clause.Expr{
			SQL:                "CASE WHEN articles.title LIKE ? THEN 1 WHEN articles.excerpt LIKE ? THEN 2 ELSE 3 END, articles.published_at DESC",
			Vars:               []interface{}{like, like},
			WithoutParentheses: true,
		}}).
		Limit(filter.Limit).Offset(filter.Offset).
		Find(&articles).Error
	if err != nil {
		return nil, 0, err
	}
	return articles, total, nil
}

// Suggestions returns up to limit published article titles starting
// with the prefix, newest first.
func (r *searchRepository) Suggestions(prefix string, limit int) ([]SearchSuggestion, error) {
	var suggestions []SearchSuggestion
	err := r.db.Model(&models.Article{}).
		Select("DISTINCT title, slug, published_at").
		Where("status = ? AND title LIKE ?", models.STATUS_PUBLISHED, prefix+"%").
		Order("published_at DESC").
		Limit(limit).
		Scan(&suggestions).Error
	return suggestions, err
}
