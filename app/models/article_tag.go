package models

import "time"

// ArticleTag is the join row between articles and tags. The tag set of an
// article is replaced wholesale on update, not diffed.
type ArticleTag struct {
	ArticleID uint64    `gorm:"primaryKey;autoIncrement:false" json:"article_id"`
	TagID     uint64    `gorm:"primaryKey;autoIncrement:false" json:"tag_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
