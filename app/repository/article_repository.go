package repository

import (
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tuguldure/newswire/app/models"
)

// articleRepository implements the ArticleRepository interface
type articleRepository struct {
	db *gorm.DB
}

// NewArticleRepository creates a new article repository instance
func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

// sortableColumns is the allow-list for caller-supplied sort columns.
// Anything else falls back to created_at.
var sortableColumns = map[string]string{
	"created_at":   "articles.created_at",
	"updated_at":   "articles.updated_at",
	"published_at": "articles.published_at",
	"title":        "articles.title",
	"views":        "articles.views",
}

func orderClause(sort, order string) string {
	column, ok := sortableColumns[sort]
	if !ok {
		column = "articles.created_at"
	}
	direction := "DESC"
	if strings.EqualFold(order, "asc") {
		direction = "ASC"
	}
	return column + " " + direction
}

// Create inserts a new article and its tag rows. When the article is
// published into a featured slot, the current occupant of that slot is
// evicted in the same transaction so the exclusivity invariant holds
// under concurrent writers (last writer wins).
func (r *articleRepository) Create(article *models.Article, tagIDs []uint64) error {
	article.ApplyStatusChange(article.Status, time.Now())
	return r.db.Transaction(func(tx *gorm.DB) error {
		if article.ClaimsFeaturedSlot() {
			if err := clearFeaturedSlot(tx, *article.FeaturedRank, 0); err != nil {
				return err
			}
		}
		if err := tx.Omit(clause.Associations).Create(article).Error; err != nil {
			return err
		}
		return replaceArticleTags(tx, article.ID, tagIDs)
	})
}

// featuredSlotEvictionQuery scopes tx to the published occupant of a
// slot, excluding exceptID (0 = no exclusion).
func featuredSlotEvictionQuery(tx *gorm.DB, rank int, exceptID uint64) *gorm.DB {
	q := tx.Model(&models.Article{}).
		Where("is_featured = ? AND status = ?", rank, models.STATUS_PUBLISHED)
	if exceptID != 0 {
		q = q.Where("id <> ?", exceptID)
	}
	return q
}

// clearFeaturedSlot resets the featured rank of whichever published
// article currently holds it. The evicted article loses its slot
// silently.
func clearFeaturedSlot(tx *gorm.DB, rank int, exceptID uint64) error {
	return featuredSlotEvictionQuery(tx, rank, exceptID).Update("is_featured", nil).Error
}

// replaceArticleTags swaps an article's tag set wholesale: delete all
// join rows, then reinsert.
func replaceArticleTags(tx *gorm.DB, articleID uint64, tagIDs []uint64) error {
	if err := tx.Where("article_id = ?", articleID).Delete(&models.ArticleTag{}).Error; err != nil {
		return err
	}
	for _, tagID := range tagIDs {
		if err := tx.Create(&models.ArticleTag{ArticleID: articleID, TagID: tagID}).Error; err != nil {
			return err
		}
	}
	return nil
}

// GetByID retrieves an article by its ID
func (r *articleRepository) GetByID(id uint64) (*models.Article, error) {
	var article models.Article
	err := r.db.Preload("Category").Preload("Author").Preload("Tags").First(&article, id).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// GetBySlug retrieves an article by its slug
func (r *articleRepository) GetBySlug(slug string) (*models.Article, error) {
	var article models.Article
	err := r.db.Preload("Category").Preload("Author").Preload("Tags").
		Where("slug = ?", slug).First(&article).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// GetByIDOrSlug resolves key as a numeric ID first, then as a slug.
func (r *articleRepository) GetByIDOrSlug(key string) (*models.Article, error) {
	if id, err := strconv.ParseUint(key, 10, 64); err == nil {
		var article models.Article
		err := r.db.Preload("Category").Preload("Author").Preload("Tags").
			Where("id = ? OR slug = ?", id, key).First(&article).Error
		if err != nil {
			return nil, err
		}
		return &article, nil
	}
	return r.GetBySlug(key)
}

func (r *articleRepository) applyFilter(q *gorm.DB, filter ArticleFilter) *gorm.DB {
	if filter.CategorySlug != "" {
		q = q.Joins("JOIN categories ON categories.id = articles.category_id").
			Where("categories.slug = ?", filter.CategorySlug)
	}
	if filter.Status != "" {
		q = q.Where("articles.status = ?", filter.Status)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where("(articles.title LIKE ? OR articles.content LIKE ?)", like, like)
	}
	return q
}

// List returns a page of articles plus the total count for the same
// filter predicate. The count runs as a separate query mirroring the
// filters.
func (r *articleRepository) List(filter ArticleFilter) ([]models.Article, int64, error) {
	var total int64
	countQuery := r.applyFilter(r.db.Model(&models.Article{}), filter)
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var articles []models.Article
	q := r.applyFilter(r.db.Model(&models.Article{}), filter).
		Preload("Category").Preload("Author").
		Order(orderClause(filter.Sort, filter.Order)).
		Limit(filter.Limit).Offset(filter.Offset)
	if err := q.Find(&articles).Error; err != nil {
		return nil, 0, err
	}
	return articles, total, nil
}

// GetFeatured returns published featured articles ordered by slot rank.
func (r *articleRepository) GetFeatured(limit int) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Preload("Category").Preload("Author").
		Where("is_featured IS NOT NULL AND status = ?", models.STATUS_PUBLISHED).
		Order("is_featured ASC").Limit(limit).Find(&articles).Error
	return articles, err
}

// GetBreaking returns published breaking-news articles, newest first.
func (r *articleRepository) GetBreaking(limit int) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Preload("Category").Preload("Author").
		Where("is_breaking = ? AND status = ?", true, models.STATUS_PUBLISHED).
		Order("created_at DESC").Limit(limit).Find(&articles).Error
	return articles, err
}

// FeaturedSlotOccupant reports which published article holds the given
// rank, or nil when the slot is free.
func (r *articleRepository) FeaturedSlotOccupant(rank int) (*models.Article, error) {
	var article models.Article
	err := r.db.Preload("Category").
		Where("is_featured = ? AND status = ?", rank, models.STATUS_PUBLISHED).
		First(&article).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &article, nil
}

// Update saves the article and, when it is published into a featured
// slot, evicts the other occupant in the same transaction. The article
// being updated is excluded from eviction so it can keep its own slot.
func (r *articleRepository) Update(article *models.Article, tagIDs []uint64, replaceTags bool) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if article.ClaimsFeaturedSlot() {
			if err := clearFeaturedSlot(tx, *article.FeaturedRank, article.ID); err != nil {
				return err
			}
		}
		if err := tx.Omit(clause.Associations).Save(article).Error; err != nil {
			return err
		}
		if replaceTags {
			return replaceArticleTags(tx, article.ID, tagIDs)
		}
		return nil
	})
}

// Delete removes the article's comments and tag rows, then the article
// itself, in one transaction. A missing article rolls everything back.
func (r *articleRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("article_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("article_id = ?", id).Delete(&models.ArticleTag{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Article{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// IncrementViews bumps the view counter of a published article by one
// and returns the row as re-read afterwards. The read is a separate
// statement, so the returned count may already include other writers.
func (r *articleRepository) IncrementViews(slug string) (*models.Article, error) {
	result := r.db.Model(&models.Article{}).
		Where("slug = ? AND status = ?", slug, models.STATUS_PUBLISHED).
		UpdateColumn("views", gorm.Expr("views + 1"))
	if result.Error != nil {
		return nil, result.Error
	}

	var article models.Article
	if err := r.db.Select("id", "slug", "views").Where("slug = ?", slug).First(&article).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

// SlugExists checks if a slug already exists among all articles,
// regardless of status.
func (r *articleRepository) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Article{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

// SlugExistsExceptID checks if a slug exists excluding a specific ID
func (r *articleRepository) SlugExistsExceptID(slug string, id uint64) (bool, error) {
	var count int64
	err := r.db.Model(&models.Article{}).Where("slug = ? AND id != ?", slug, id).Count(&count).Error
	return count > 0, err
}

// CountByCategory returns how many articles reference a category.
func (r *articleRepository) CountByCategory(categoryID uint64) (int64, error) {
	var count int64
	err := r.db.Model(&models.Article{}).Where("category_id = ?", categoryID).Count(&count).Error
	return count, err
}

// Stats aggregates the dashboard counters.
func (r *articleRepository) Stats() (*models.DashboardStats, error) {
	var stats models.DashboardStats
	if err := r.db.Model(&models.Article{}).Count(&stats.TotalArticles).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Article{}).
		Select("COALESCE(SUM(views), 0)").Scan(&stats.TotalViews).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Comment{}).
		Where("is_approved = ?", true).Count(&stats.TotalComments).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Category{}).Count(&stats.TotalCategories).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Article{}).
		Where("status = ?", models.STATUS_PUBLISHED).Count(&stats.PublishedArticles).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Article{}).
		Where("status = ?", models.STATUS_DRAFT).Count(&stats.DraftArticles).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}
