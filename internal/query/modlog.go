package query

import (
	"canopy/internal/models"

	"gorm.io/gorm"
)

// 审核日志读取。每类动作一个列表函数，统一按时间倒序分页。
// 社区过滤：帖子类动作经 posts 关联，评论类经 comments->posts 关联。

// modlogScope 公共部分：操作者过滤 + 时间倒序 + 分页
func modlogScope(tx *gorm.DB, table string, modUserID *uint, page, limit *int) (*gorm.DB, error) {
	l, o, err := LimitAndOffset(page, limit)
	if err != nil {
		return nil, err
	}
	if modUserID != nil {
		tx = tx.Where(table+".mod_user_id = ?", *modUserID)
	}
	return tx.Order(table + ".created_at DESC").Limit(l).Offset(o), nil
}

func ModRemovePostViews(conn *gorm.DB, communityID, modUserID *uint, page, limit *int) ([]models.ModRemovePostView, error) {
	tx := conn.Table("mod_remove_posts").
		Select(`mod_remove_posts.id, mod_remove_posts.mod_user_id, mods.username AS mod_username,
			mod_remove_posts.post_id, posts.title AS post_title,
			posts.community_id, communities.name AS community_name,
			mod_remove_posts.reason, mod_remove_posts.removed, mod_remove_posts.created_at`).
		Joins("JOIN users mods ON mods.id = mod_remove_posts.mod_user_id").
		Joins("JOIN posts ON posts.id = mod_remove_posts.post_id").
		Joins("JOIN communities ON communities.id = posts.community_id")
	if communityID != nil {
		tx = tx.Where("posts.community_id = ?", *communityID)
	}
	tx, err := modlogScope(tx, "mod_remove_posts", modUserID, page, limit)
	if err != nil {
		return nil, err
	}
	views := []models.ModRemovePostView{}
	err = tx.Scan(&views).Error
	return views, err
}

func ModLockPostViews(conn *gorm.DB, communityID, modUserID *uint, page, limit *int) ([]models.ModLockPostView, error) {
	tx := conn.Table("mod_lock_posts").
		Select(`mod_lock_posts.id, mod_lock_posts.mod_user_id, mods.username AS mod_username,
			mod_lock_posts.post_id, posts.title AS post_title,
			posts.community_id, communities.name AS community_name,
			mod_lock_posts.locked, mod_lock_posts.created_at`).
		Joins("JOIN users mods ON mods.id = mod_lock_posts.mod_user_id").
		Joins("JOIN posts ON posts.id = mod_lock_posts.post_id").
		Joins("JOIN communities ON communities.id = posts.community_id")
	if communityID != nil {
		tx = tx.Where("posts.community_id = ?", *communityID)
	}
	tx, err := modlogScope(tx, "mod_lock_posts", modUserID, page, limit)
	if err != nil {
		return nil, err
	}
	views := []models.ModLockPostView{}
	err = tx.Scan(&views).Error
	return views, err
}

func ModStickyPostViews(conn *gorm.DB, communityID, modUserID *uint, page, limit *int) ([]models.ModStickyPostView, error) {
	tx := conn.Table("mod_sticky_posts").
		Select(`mod_sticky_posts.id, mod_sticky_posts.mod_user_id, mods.username AS mod_username,
			mod_sticky_posts.post_id, posts.title AS post_title,
			posts.community_id, communities.name AS community_name,
			mod_sticky_posts.stickied, mod_sticky_posts.created_at`).
		Joins("JOIN users mods ON mods.id = mod_sticky_posts.mod_user_id").
		Joins("JOIN posts ON posts.id = mod_sticky_posts.post_id").
		Joins("JOIN communities ON communities.id = posts.community_id")
	if communityID != nil {
		tx = tx.Where("posts.community_id = ?", *communityID)
	}
	tx, err := modlogScope(tx, "mod_sticky_posts", modUserID, page, limit)
	if err != nil {
		return nil, err
	}
	views := []models.ModStickyPostView{}
	err = tx.Scan(&views).Error
	return views, err
}

func ModRemoveCommentViews(conn *gorm.DB, communityID, modUserID *uint, page, limit *int) ([]models.ModRemoveCommentView, error) {
	tx := conn.Table("mod_remove_comments").
		Select(`mod_remove_comments.id, mod_remove_comments.mod_user_id, mods.username AS mod_username,
			mod_remove_comments.comment_id, comments.content AS comment_content, comments.post_id,
			posts.community_id, communities.name AS community_name,
			mod_remove_comments.reason, mod_remove_comments.removed, mod_remove_comments.created_at`).
		Joins("JOIN users mods ON mods.id = mod_remove_comments.mod_user_id").
		Joins("JOIN comments ON comments.id = mod_remove_comments.comment_id").
		Joins("JOIN posts ON posts.id = comments.post_id").
		Joins("JOIN communities ON communities.id = posts.community_id")
	if communityID != nil {
		tx = tx.Where("posts.community_id = ?", *communityID)
	}
	tx, err := modlogScope(tx, "mod_remove_comments", modUserID, page, limit)
	if err != nil {
		return nil, err
	}
	views := []models.ModRemoveCommentView{}
	err = tx.Scan(&views).Error
	return views, err
}

func ModBanFromCommunityViews(conn *gorm.DB, communityID, modUserID *uint, page, limit *int) ([]models.ModBanFromCommunityView, error) {
	tx := conn.Table("mod_ban_from_communities").
		Select(`mod_ban_from_communities.id, mod_ban_from_communities.mod_user_id, mods.username AS mod_username,
			mod_ban_from_communities.other_user_id, others.username AS other_username,
			mod_ban_from_communities.community_id, communities.name AS community_name,
			mod_ban_from_communities.reason, mod_ban_from_communities.banned,
			mod_ban_from_communities.expires, mod_ban_from_communities.created_at`).
		Joins("JOIN users mods ON mods.id = mod_ban_from_communities.mod_user_id").
		Joins("JOIN users others ON others.id = mod_ban_from_communities.other_user_id").
		Joins("JOIN communities ON communities.id = mod_ban_from_communities.community_id")
	if communityID != nil {
		tx = tx.Where("mod_ban_from_communities.community_id = ?", *communityID)
	}
	tx, err := modlogScope(tx, "mod_ban_from_communities", modUserID, page, limit)
	if err != nil {
		return nil, err
	}
	views := []models.ModBanFromCommunityView{}
	err = tx.Scan(&views).Error
	return views, err
}

func ModAddCommunityViews(conn *gorm.DB, communityID, modUserID *uint, page, limit *int) ([]models.ModAddCommunityView, error) {
	tx := conn.Table("mod_add_communities").
		Select(`mod_add_communities.id, mod_add_communities.mod_user_id, mods.username AS mod_username,
			mod_add_communities.other_user_id, others.username AS other_username,
			mod_add_communities.community_id, communities.name AS community_name,
			mod_add_communities.removed, mod_add_communities.created_at`).
		Joins("JOIN users mods ON mods.id = mod_add_communities.mod_user_id").
		Joins("JOIN users others ON others.id = mod_add_communities.other_user_id").
		Joins("JOIN communities ON communities.id = mod_add_communities.community_id")
	if communityID != nil {
		tx = tx.Where("mod_add_communities.community_id = ?", *communityID)
	}
	tx, err := modlogScope(tx, "mod_add_communities", modUserID, page, limit)
	if err != nil {
		return nil, err
	}
	views := []models.ModAddCommunityView{}
	err = tx.Scan(&views).Error
	return views, err
}

// 以下三类是全站动作，不归属社区，只在不带 community_id 的查询里返回

func ModRemoveCommunityViews(conn *gorm.DB, modUserID *uint, page, limit *int) ([]models.ModRemoveCommunityView, error) {
	tx := conn.Table("mod_remove_communities").
		Select(`mod_remove_communities.id, mod_remove_communities.mod_user_id, mods.username AS mod_username,
			mod_remove_communities.community_id, communities.name AS community_name,
			mod_remove_communities.reason, mod_remove_communities.removed, mod_remove_communities.created_at`).
		Joins("JOIN users mods ON mods.id = mod_remove_communities.mod_user_id").
		Joins("JOIN communities ON communities.id = mod_remove_communities.community_id")
	tx, err := modlogScope(tx, "mod_remove_communities", modUserID, page, limit)
	if err != nil {
		return nil, err
	}
	views := []models.ModRemoveCommunityView{}
	err = tx.Scan(&views).Error
	return views, err
}

func ModBanViews(conn *gorm.DB, modUserID *uint, page, limit *int) ([]models.ModBanView, error) {
	tx := conn.Table("mod_bans").
		Select(`mod_bans.id, mod_bans.mod_user_id, mods.username AS mod_username,
			mod_bans.other_user_id, others.username AS other_username,
			mod_bans.reason, mod_bans.banned, mod_bans.expires, mod_bans.created_at`).
		Joins("JOIN users mods ON mods.id = mod_bans.mod_user_id").
		Joins("JOIN users others ON others.id = mod_bans.other_user_id")
	tx, err := modlogScope(tx, "mod_bans", modUserID, page, limit)
	if err != nil {
		return nil, err
	}
	views := []models.ModBanView{}
	err = tx.Scan(&views).Error
	return views, err
}

func ModAddViews(conn *gorm.DB, modUserID *uint, page, limit *int) ([]models.ModAddView, error) {
	tx := conn.Table("mod_adds").
		Select(`mod_adds.id, mod_adds.mod_user_id, mods.username AS mod_username,
			mod_adds.other_user_id, others.username AS other_username,
			mod_adds.removed, mod_adds.created_at`).
		Joins("JOIN users mods ON mods.id = mod_adds.mod_user_id").
		Joins("JOIN users others ON others.id = mod_adds.other_user_id")
	tx, err := modlogScope(tx, "mod_adds", modUserID, page, limit)
	if err != nil {
		return nil, err
	}
	views := []models.ModAddView{}
	err = tx.Scan(&views).Error
	return views, err
}
