package models

import (
	"time"
)

// 审核日志表。每条记录一次管理动作，写入后不再修改。
// Removed/Locked/Stickied/Banned 为 false 时表示对应动作被撤销（恢复/解锁/解封）。

type ModRemovePost struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ModUserID uint      `gorm:"not null;index" json:"mod_user_id"`
	PostID    uint      `gorm:"not null;index" json:"post_id"`
	Reason    string    `json:"reason"`
	Removed   bool      `gorm:"default:true" json:"removed"`
	CreatedAt time.Time `json:"created_at"`
}

type ModLockPost struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ModUserID uint      `gorm:"not null;index" json:"mod_user_id"`
	PostID    uint      `gorm:"not null;index" json:"post_id"`
	Locked    bool      `gorm:"default:true" json:"locked"`
	CreatedAt time.Time `json:"created_at"`
}

type ModStickyPost struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ModUserID uint      `gorm:"not null;index" json:"mod_user_id"`
	PostID    uint      `gorm:"not null;index" json:"post_id"`
	Stickied  bool      `gorm:"default:true" json:"stickied"`
	CreatedAt time.Time `json:"created_at"`
}

type ModRemoveComment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ModUserID uint      `gorm:"not null;index" json:"mod_user_id"`
	CommentID uint      `gorm:"not null;index" json:"comment_id"`
	Reason    string    `json:"reason"`
	Removed   bool      `gorm:"default:true" json:"removed"`
	CreatedAt time.Time `json:"created_at"`
}

type ModRemoveCommunity struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ModUserID   uint      `gorm:"not null;index" json:"mod_user_id"`
	CommunityID uint      `gorm:"not null;index" json:"community_id"`
	Reason      string    `json:"reason"`
	Removed     bool      `gorm:"default:true" json:"removed"`
	CreatedAt   time.Time `json:"created_at"`
}

type ModBanFromCommunity struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	ModUserID   uint       `gorm:"not null;index" json:"mod_user_id"`
	OtherUserID uint       `gorm:"not null;index" json:"other_user_id"`
	CommunityID uint       `gorm:"not null;index" json:"community_id"`
	Reason      string     `json:"reason"`
	Banned      bool       `gorm:"default:true" json:"banned"`
	Expires     *time.Time `json:"expires"`
	CreatedAt   time.Time  `json:"created_at"`
}

type ModBan struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	ModUserID   uint       `gorm:"not null;index" json:"mod_user_id"`
	OtherUserID uint       `gorm:"not null;index" json:"other_user_id"`
	Reason      string     `json:"reason"`
	Banned      bool       `gorm:"default:true" json:"banned"`
	Expires     *time.Time `json:"expires"`
	CreatedAt   time.Time  `json:"created_at"`
}

type ModAddCommunity struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ModUserID   uint      `gorm:"not null;index" json:"mod_user_id"`
	OtherUserID uint      `gorm:"not null;index" json:"other_user_id"`
	CommunityID uint      `gorm:"not null;index" json:"community_id"`
	Removed     bool      `gorm:"default:false" json:"removed"`
	CreatedAt   time.Time `json:"created_at"`
}

type ModAdd struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ModUserID   uint      `gorm:"not null;index" json:"mod_user_id"`
	OtherUserID uint      `gorm:"not null;index" json:"other_user_id"`
	Removed     bool      `gorm:"default:false" json:"removed"`
	CreatedAt   time.Time `json:"created_at"`
}
