package query

import (
	"canopy/internal/models"

	"gorm.io/gorm"
)

// CommentQuery 评论读取选项，字段含义同 PostQuery
type CommentQuery struct {
	Sort       SortType
	SearchTerm string
	PostID     *uint
	AuthorID   *uint
	ViewerID   *uint
	Page       *int
	Limit      *int
}

func (q CommentQuery) List(conn *gorm.DB) ([]models.CommentView, error) {
	limit, offset, err := LimitAndOffset(q.Page, q.Limit)
	if err != nil {
		return nil, err
	}

	selects := `comments.id, comments.post_id, posts.title AS post_title,
		posts.community_id, communities.name AS community_name,
		comments.author_id, users.username AS author_name,
		comments.content, comments.score, comments.created_at`

	tx := conn.Table("comments").
		Joins("JOIN users ON users.id = comments.author_id").
		Joins("JOIN posts ON posts.id = comments.post_id").
		Joins("JOIN communities ON communities.id = posts.community_id").
		Where("comments.removed = ?", false).
		Where("posts.removed = ?", false).
		Where("communities.removed = ?", false)

	if q.ViewerID != nil {
		selects += ", votes.value AS my_vote"
		tx = tx.Joins("LEFT JOIN votes ON votes.comment_id = comments.id AND votes.user_id = ?", *q.ViewerID)
	}

	if q.SearchTerm != "" {
		tx = tx.Where("LOWER(comments.content) LIKE LOWER(?)", likePattern(q.SearchTerm))
	}
	if q.PostID != nil {
		tx = tx.Where("comments.post_id = ?", *q.PostID)
	}
	if q.AuthorID != nil {
		tx = tx.Where("comments.author_id = ?", *q.AuthorID)
	}

	switch q.Sort {
	case SortNew:
		tx = tx.Order("comments.created_at DESC")
	case SortTop, SortMostComments:
		tx = tx.Order("comments.score DESC, comments.created_at DESC")
	default: // Hot
		tx = tx.Order(hotRankOrder(conn, "comments"))
	}

	views := []models.CommentView{}
	err = tx.Select(selects).Limit(limit).Offset(offset).Scan(&views).Error
	return views, err
}
