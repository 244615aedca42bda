package models

import (
	"time"
)

type Post struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	URL         string    `json:"url"` // Optional
	Body        string    `gorm:"type:text" json:"body"`
	CommunityID uint      `gorm:"not null;index" json:"community_id"`
	Community   Community `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	AuthorID    uint      `gorm:"not null;index" json:"author_id"`
	Author      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Score       int       `gorm:"default:0" json:"score"`
	NSFW        bool      `gorm:"default:false" json:"nsfw"`
	Removed     bool      `gorm:"default:false" json:"removed"`
	Locked      bool      `gorm:"default:false" json:"locked"`
	Stickied    bool      `gorm:"default:false" json:"stickied"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PostView 带关联字段的帖子视图。MyVote 仅在带身份查询时填充。
type PostView struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	URL           string    `json:"url"`
	Body          string    `json:"body"`
	CommunityID   uint      `json:"community_id"`
	CommunityName string    `json:"community_name"`
	AuthorID      uint      `json:"author_id"`
	AuthorName    string    `json:"author_name"`
	Score         int       `json:"score"`
	CommentCount  int       `json:"comment_count"`
	NSFW          bool      `json:"nsfw"`
	Locked        bool      `json:"locked"`
	Stickied      bool      `json:"stickied"`
	MyVote        *int      `json:"my_vote"`
	CreatedAt     time.Time `json:"created_at"`
}
