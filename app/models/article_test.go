package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int {
	return &v
}

func TestValidFeaturedRank(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rank *int
		want bool
	}{
		{name: "nil rank is valid", rank: nil, want: true},
		{name: "lowest slot", rank: intPtr(1), want: true},
		{name: "highest slot", rank: intPtr(5), want: true},
		{name: "zero is invalid", rank: intPtr(0), want: false},
		{name: "above range", rank: intPtr(6), want: false},
		{name: "negative", rank: intPtr(-1), want: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, ValidFeaturedRank(tc.rank))
		})
	}
}

func TestArticleValidate(t *testing.T) {
	t.Parallel()

	valid := Article{
		Title:      "Election results are in",
		Slug:       "election-results-are-in",
		Content:    "Full coverage of the count.",
		CategoryID: 1,
		Status:     STATUS_DRAFT,
	}
	assert.NoError(t, valid.Validate())

	noTitle := valid
	noTitle.Title = ""
	assert.Error(t, noTitle.Validate())

	badStatus := valid
	badStatus.Status = "archived"
	assert.Error(t, badStatus.Validate())

	badRank := valid
	badRank.FeaturedRank = intPtr(9)
	assert.Error(t, badRank.Validate())

	goodRank := valid
	goodRank.FeaturedRank = intPtr(3)
	assert.NoError(t, goodRank.Validate())
}

func TestApplyStatusChangeStampsOnce(t *testing.T) {
	t.Parallel()

	article := Article{Status: STATUS_DRAFT}
	assert.Nil(t, article.PublishedAt)

	// Saving a draft never stamps.
	article.ApplyStatusChange(STATUS_DRAFT, time.Now())
	assert.Nil(t, article.PublishedAt)

	// First publish stamps.
	first := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	article.ApplyStatusChange(STATUS_PUBLISHED, first)
	assert.Equal(t, STATUS_PUBLISHED, article.Status)
	assert.NotNil(t, article.PublishedAt)
	assert.Equal(t, first, *article.PublishedAt)

	// Unpublishing keeps the stamp.
	article.ApplyStatusChange(STATUS_DRAFT, first.Add(time.Hour))
	assert.Equal(t, STATUS_DRAFT, article.Status)
	assert.Equal(t, first, *article.PublishedAt)

	// Re-publishing never renews it.
	article.ApplyStatusChange(STATUS_PUBLISHED, first.Add(48*time.Hour))
	assert.Equal(t, first, *article.PublishedAt)
}

func TestClaimsFeaturedSlot(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		article Article
		want    bool
	}{
		{name: "published with rank claims", article: Article{Status: STATUS_PUBLISHED, FeaturedRank: intPtr(1)}, want: true},
		{name: "draft with rank does not claim", article: Article{Status: STATUS_DRAFT, FeaturedRank: intPtr(1)}, want: false},
		{name: "published without rank does not claim", article: Article{Status: STATUS_PUBLISHED}, want: false},
		{name: "draft without rank does not claim", article: Article{Status: STATUS_DRAFT}, want: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.article.ClaimsFeaturedSlot())
		})
	}
}

func TestArticleIsPublished(t *testing.T) {
	t.Parallel()

	draft := Article{Status: STATUS_DRAFT}
	assert.False(t, draft.IsPublished())

	published := Article{Status: STATUS_PUBLISHED}
	assert.True(t, published.IsPublished())
}
