package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tuguldure/newswire/app/models"
)

func uintPtr(v uint64) *uint64 {
	return &v
}

func comment(id uint64, parentID *uint64, minutesAgo int) models.Comment {
	return models.Comment{
		ID:        id,
		ArticleID: 1,
		UserName:  "reader",
		Content:   "text",
		ParentID:  parentID,
		CreatedAt: time.Now().Add(-time.Duration(minutesAgo) * time.Minute),
	}
}

func TestAssembleCommentTree(t *testing.T) {
	t.Parallel()

	// Input ordered newest-first, as the query delivers it. Comment 4
	// replies to root 1, comment 5 replies to root 3.
	input := []models.Comment{
		comment(5, uintPtr(3), 1),
		comment(4, uintPtr(1), 2),
		comment(3, nil, 3),
		comment(2, nil, 4),
		comment(1, nil, 5),
	}

	tree := assembleCommentTree(input)

	assert.Len(t, tree, 3)
	assert.Equal(t, uint64(3), tree[0].ID, "roots keep their newest-first order")
	assert.Equal(t, uint64(2), tree[1].ID)
	assert.Equal(t, uint64(1), tree[2].ID)

	assert.Len(t, tree[0].Replies, 1)
	assert.Equal(t, uint64(5), tree[0].Replies[0].ID)
	assert.Empty(t, tree[1].Replies)
	assert.Len(t, tree[2].Replies, 1)
	assert.Equal(t, uint64(4), tree[2].Replies[0].ID)
}

func TestAssembleCommentTreeReplyBeforeParent(t *testing.T) {
	t.Parallel()

	// The reply precedes its root in the input; two passes must still
	// link them.
	input := []models.Comment{
		comment(2, uintPtr(1), 1),
		comment(1, nil, 2),
	}

	tree := assembleCommentTree(input)

	assert.Len(t, tree, 1)
	assert.Len(t, tree[0].Replies, 1)
	assert.Equal(t, uint64(2), tree[0].Replies[0].ID)
}

func TestAssembleCommentTreeDropsOrphans(t *testing.T) {
	t.Parallel()

	input := []models.Comment{
		comment(1, nil, 3),
		comment(2, uintPtr(99), 2), // parent does not exist
	}

	tree := assembleCommentTree(input)

	assert.Len(t, tree, 1)
	assert.Empty(t, tree[0].Replies)
}

func TestAssembleCommentTreeCapsDepthAtTwo(t *testing.T) {
	t.Parallel()

	// Comment 3 replies to reply 2. It must not appear anywhere: replies
	// only attach to roots.
	input := []models.Comment{
		comment(1, nil, 3),
		comment(2, uintPtr(1), 2),
		comment(3, uintPtr(2), 1),
	}

	tree := assembleCommentTree(input)

	assert.Len(t, tree, 1)
	assert.Len(t, tree[0].Replies, 1)
	assert.Equal(t, uint64(2), tree[0].Replies[0].ID)
}

func TestAssembleCommentTreeEmptyInput(t *testing.T) {
	t.Parallel()

	tree := assembleCommentTree(nil)

	assert.NotNil(t, tree, "empty article yields an empty list, not null")
	assert.Empty(t, tree)
}
