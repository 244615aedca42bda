package query

import (
	"canopy/internal/models"

	"gorm.io/gorm"
)

// CommunityQuery 社区读取选项。搜索匹配 name 和 title。
type CommunityQuery struct {
	Sort       SortType
	SearchTerm string
	ShowNSFW   bool
	Page       *int
	Limit      *int
}

func (q CommunityQuery) List(conn *gorm.DB) ([]models.CommunityView, error) {
	limit, offset, err := LimitAndOffset(q.Page, q.Limit)
	if err != nil {
		return nil, err
	}

	tx := conn.Table("communities").
		Select(`communities.id, communities.name, communities.title, communities.description,
			communities.category_id, communities.creator_id, users.username AS creator_name,
			communities.nsfw, communities.created_at`).
		Joins("JOIN users ON users.id = communities.creator_id").
		Where("communities.removed = ?", false)

	if q.SearchTerm != "" {
		pattern := likePattern(q.SearchTerm)
		tx = tx.Where("LOWER(communities.name) LIKE LOWER(?) OR LOWER(communities.title) LIKE LOWER(?)", pattern, pattern)
	}
	if !q.ShowNSFW {
		tx = tx.Where("communities.nsfw = ?", false)
	}

	switch q.Sort {
	case SortNew:
		tx = tx.Order("communities.created_at DESC")
	default:
		// 社区没有自身分数，热度/Top 都按帖子数量近似
		tx = tx.Order("(SELECT COUNT(*) FROM posts WHERE posts.community_id = communities.id) DESC, communities.created_at DESC")
	}

	views := []models.CommunityView{}
	err = tx.Limit(limit).Offset(offset).Scan(&views).Error
	return views, err
}
