package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"

	"github.com/tuguldure/newswire/app/models"
)

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	assert.NoError(t, err)
	return db
}

func TestFeaturedSlotEvictionQuery(t *testing.T) {
	t.Parallel()

	db := dryRunDB(t)

	// Creating into a slot: no article to exclude yet.
	stmt := featuredSlotEvictionQuery(db, 3, 0).Find(&[]models.Article{}).Statement
	sql := stmt.SQL.String()
	assert.Contains(t, sql, "is_featured = ?")
	assert.Contains(t, sql, "status = ?")
	assert.NotContains(t, sql, "id <> ?")
	assert.Contains(t, stmt.Vars, 3)
	assert.Contains(t, stmt.Vars, models.STATUS_PUBLISHED)

	// Updating: the article keeps its own slot instead of evicting itself.
	stmt = featuredSlotEvictionQuery(db, 2, 7).Find(&[]models.Article{}).Statement
	sql = stmt.SQL.String()
	assert.Contains(t, sql, "is_featured = ?")
	assert.Contains(t, sql, "id <> ?")
	assert.Contains(t, stmt.Vars, 2)
	assert.Contains(t, stmt.Vars, uint64(7))
}

func TestOrderClause(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		sort  string
		order string
		want  string
	}{
		{name: "default", sort: "", order: "", want: "articles.created_at DESC"},
		{name: "views ascending", sort: "views", order: "asc", want: "articles.views ASC"},
		{name: "published_at descending", sort: "published_at", order: "desc", want: "articles.published_at DESC"},
		{name: "title case-insensitive order", sort: "title", order: "ASC", want: "articles.title ASC"},
		{name: "unknown column falls back", sort: "password", order: "asc", want: "articles.created_at ASC"},
		{name: "injection attempt falls back", sort: "title; DROP TABLE articles", order: "asc", want: "articles.created_at ASC"},
		{name: "unknown direction becomes desc", sort: "views", order: "sideways", want: "articles.views DESC"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, orderClause(tc.sort, tc.order))
		})
	}
}
