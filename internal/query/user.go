package query

import (
	"canopy/internal/models"

	"gorm.io/gorm"
)

// UserQuery 用户搜索选项。被封禁用户不出现在搜索结果里。
type UserQuery struct {
	Sort       SortType
	SearchTerm string
	Page       *int
	Limit      *int
}

func (q UserQuery) List(conn *gorm.DB) ([]models.UserView, error) {
	limit, offset, err := LimitAndOffset(q.Page, q.Limit)
	if err != nil {
		return nil, err
	}

	tx := conn.Table("users").
		Select("users.id, users.username, users.avatar, users.bio, users.admin, users.banned, users.created_at").
		Where("users.banned = ?", false)

	if q.SearchTerm != "" {
		tx = tx.Where("LOWER(users.username) LIKE LOWER(?)", likePattern(q.SearchTerm))
	}

	switch q.Sort {
	case SortNew:
		tx = tx.Order("users.created_at DESC")
	default:
		// 按评论积分近似活跃度
		tx = tx.Order("(SELECT COALESCE(SUM(score), 0) FROM comments WHERE comments.author_id = users.id) DESC, users.created_at DESC")
	}

	views := []models.UserView{}
	err = tx.Limit(limit).Offset(offset).Scan(&views).Error
	return views, err
}

// Admins 所有管理员。顺序由调用方调整（站点创建者置首）。
func Admins(conn *gorm.DB) ([]models.UserView, error) {
	views := []models.UserView{}
	err := conn.Table("users").
		Select("id, username, avatar, bio, admin, banned, created_at").
		Where("admin = ?", true).
		Order("id ASC").
		Scan(&views).Error
	return views, err
}

// Banned 所有被站点封禁的用户
func Banned(conn *gorm.DB) ([]models.UserView, error) {
	views := []models.UserView{}
	err := conn.Table("users").
		Select("id, username, avatar, bio, admin, banned, created_at").
		Where("banned = ?", true).
		Order("id ASC").
		Scan(&views).Error
	return views, err
}
