package models

import (
	"time"
)

type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;index" json:"post_id"`
	Post      Post      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	AuthorID  uint      `gorm:"not null;index" json:"author_id"`
	Author    User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	ParentID  *uint     `gorm:"index" json:"parent_id"` // Nullable for top-level comments
	Content   string    `gorm:"type:text;not null" json:"content"`
	Score     int       `gorm:"default:0" json:"score"`
	Removed   bool      `gorm:"default:false" json:"removed"`
	CreatedAt time.Time `json:"created_at"`
}

// CommentView 带关联字段的评论视图
type CommentView struct {
	ID            uint      `json:"id"`
	PostID        uint      `json:"post_id"`
	PostTitle     string    `json:"post_title"`
	CommunityID   uint      `json:"community_id"`
	CommunityName string    `json:"community_name"`
	AuthorID      uint      `json:"author_id"`
	AuthorName    string    `json:"author_name"`
	Content       string    `json:"content"`
	Score         int       `json:"score"`
	MyVote        *int      `json:"my_vote"`
	CreatedAt     time.Time `json:"created_at"`
}
