package query

import (
	"canopy/internal/models"

	"gorm.io/gorm"
)

// PostQuery 帖子读取的全部可选项。零值即默认：Hot 排序、不含 NSFW、第一页。
// SearchTerm 与 URLSearch 互斥，URLSearch 优先（只匹配 url 字段）。
type PostQuery struct {
	Sort        SortType
	SearchTerm  string
	URLSearch   string
	CommunityID *uint
	AuthorID    *uint
	ShowNSFW    bool
	ViewerID    *uint // 填充 my_vote 用
	Page        *int
	Limit       *int
}

func (q PostQuery) List(conn *gorm.DB) ([]models.PostView, error) {
	limit, offset, err := LimitAndOffset(q.Page, q.Limit)
	if err != nil {
		return nil, err
	}

	selects := `posts.id, posts.title, posts.url, posts.body,
		posts.community_id, communities.name AS community_name,
		posts.author_id, users.username AS author_name,
		posts.score, posts.nsfw, posts.locked, posts.stickied, posts.created_at,
		(SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id) AS comment_count`

	tx := conn.Table("posts").
		Joins("JOIN users ON users.id = posts.author_id").
		Joins("JOIN communities ON communities.id = posts.community_id").
		Where("posts.removed = ?", false).
		Where("communities.removed = ?", false)

	if q.ViewerID != nil {
		selects += ", votes.value AS my_vote"
		tx = tx.Joins("LEFT JOIN votes ON votes.post_id = posts.id AND votes.user_id = ?", *q.ViewerID)
	}

	if q.URLSearch != "" {
		tx = tx.Where("LOWER(posts.url) LIKE LOWER(?)", likePattern(q.URLSearch))
	} else if q.SearchTerm != "" {
		pattern := likePattern(q.SearchTerm)
		tx = tx.Where("LOWER(posts.title) LIKE LOWER(?) OR LOWER(posts.body) LIKE LOWER(?)", pattern, pattern)
	}

	if q.CommunityID != nil {
		tx = tx.Where("posts.community_id = ?", *q.CommunityID)
	}
	if q.AuthorID != nil {
		tx = tx.Where("posts.author_id = ?", *q.AuthorID)
	}
	if !q.ShowNSFW {
		tx = tx.Where("posts.nsfw = ?", false).Where("communities.nsfw = ?", false)
	}

	switch q.Sort {
	case SortNew:
		tx = tx.Order("posts.created_at DESC")
	case SortTop:
		tx = tx.Order("posts.score DESC, posts.created_at DESC")
	case SortMostComments:
		tx = tx.Order("comment_count DESC, posts.created_at DESC")
	default: // Hot
		tx = tx.Order(hotRankOrder(conn, "posts"))
	}

	views := []models.PostView{}
	err = tx.Select(selects).Limit(limit).Offset(offset).Scan(&views).Error
	return views, err
}
