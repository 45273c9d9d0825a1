package repository

import (
	"github.com/tuguldure/newswire/app/models"
	"gorm.io/gorm"
)

// ArticleFilter carries the listing parameters for the article index.
// Sort and Order are matched against a fixed allow-list; unknown values
// fall back to the default ordering.
type ArticleFilter struct {
	CategorySlug string
	Status       string
	Search       string
	Sort         string
	Order        string
	Limit        int
	Offset       int
}

// ArticleRepository defines the interface for article-related database operations
type ArticleRepository interface {
	Create(article *models.Article, tagIDs []uint64) error
	GetByID(id uint64) (*models.Article, error)
	GetBySlug(slug string) (*models.Article, error)
	GetByIDOrSlug(key string) (*models.Article, error)
	List(filter ArticleFilter) ([]models.Article, int64, error)
	GetFeatured(limit int) ([]models.Article, error)
	GetBreaking(limit int) ([]models.Article, error)
	FeaturedSlotOccupant(rank int) (*models.Article, error)
	Update(article *models.Article, tagIDs []uint64, replaceTags bool) error
	Delete(id uint64) error
	IncrementViews(slug string) (*models.Article, error)
	SlugExists(slug string) (bool, error)
	SlugExistsExceptID(slug string, id uint64) (bool, error)
	CountByCategory(categoryID uint64) (int64, error)
	Stats() (*models.DashboardStats, error)
}

// CommentRepository defines the interface for comment-related operations
type CommentRepository interface {
	GetApprovedByArticle(articleID uint64) ([]CommentNode, error)
	GetApprovedTree(articleID uint64) ([]CommentNode, error)
	Create(comment *models.Comment) error
	GetByID(id uint64) (*models.Comment, error)
	Like(id uint64) (uint64, error)
	ListAll() ([]CommentWithArticle, error)
	Approve(id uint64) error
	DeleteWithReplies(id uint64) error
}

// CategoryRepository defines the interface for category-related operations
type CategoryRepository interface {
	GetAllWithCounts() ([]CategoryWithCount, error)
	GetBySlugOrID(key string) (*models.Category, error)
	GetByID(id uint64) (*models.Category, error)
	Create(category *models.Category) error
	Update(category *models.Category) error
	Delete(id uint64) error
	SlugExists(slug string) (bool, error)
	SlugExistsExceptID(slug string, id uint64) (bool, error)
}

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint64) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	UsernameOrEmailExists(username, email string) (bool, error)
	UsernameOrEmailExistsExceptID(username, email string, id uint64) (bool, error)
	List(role, search string) ([]models.User, error)
	Update(user *models.User) error
	UpdatePassword(id uint64, hashedPassword string) error
	Delete(id uint64) error
	RoleStats() (*models.RoleStats, error)
}

// BannerRepository defines the interface for banner-related operations
type BannerRepository interface {
	GetActive(bannerType string) ([]models.Banner, error)
	GetAll() ([]models.Banner, error)
	GetByID(id uint64) (*models.Banner, error)
	Create(banner *models.Banner) error
	Update(banner *models.Banner) error
	Delete(id uint64) error
	Toggle(id uint64) error
}

// SubmissionRepository defines the interface for reader submissions
type SubmissionRepository interface {
	Create(submission *models.Submission) error
	List() ([]models.Submission, error)
}

// SearchFilter carries the full-text search parameters.
type SearchFilter struct {
	Query        string
	CategorySlug string
	Limit        int
	Offset       int
}

// SearchRepository defines the interface for the public search endpoints
type SearchRepository interface {
	Search(filter SearchFilter) ([]models.Article, int64, error)
	Suggestions(prefix string, limit int) ([]SearchSuggestion, error)
}

// CommentNode is a root comment with its direct replies attached. The
// struct shape itself caps the delivered tree at two levels.
type CommentNode struct {
	models.Comment
	Replies []models.Comment `json:"replies"`
}

// CommentWithArticle is a comment joined with the title of its article,
// for the moderation listing.
type CommentWithArticle struct {
	models.Comment
	ArticleTitle string `json:"article_title"`
}

// CategoryWithCount is a category with its published article count.
type CategoryWithCount struct {
	models.Category
	ArticleCount int64 `json:"article_count"`
}

// SearchSuggestion is a title/slug pair for typeahead results.
type SearchSuggestion struct {
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

// Repositories struct holds all repository instances
type Repositories struct {
	Article    ArticleRepository
	Comment    CommentRepository
	Category   CategoryRepository
	User       UserRepository
	Banner     BannerRepository
	Submission SubmissionRepository
	Search     SearchRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Article:    NewArticleRepository(db),
		Comment:    NewCommentRepository(db),
		Category:   NewCategoryRepository(db),
		User:       NewUserRepository(db),
		Banner:     NewBannerRepository(db),
		Submission: NewSubmissionRepository(db),
		Search:     NewSearchRepository(db),
	}
}
