package models

import (
	"time"
)

// 审核日志视图。关联出操作者用户名和目标对象的展示字段，供 modlog 接口返回。

type ModRemovePostView struct {
	ID            uint      `json:"id"`
	ModUserID     uint      `json:"mod_user_id"`
	ModUsername   string    `json:"mod_username"`
	PostID        uint      `json:"post_id"`
	PostTitle     string    `json:"post_title"`
	CommunityID   uint      `json:"community_id"`
	CommunityName string    `json:"community_name"`
	Reason        string    `json:"reason"`
	Removed       bool      `json:"removed"`
	CreatedAt     time.Time `json:"created_at"`
}

type ModLockPostView struct {
	ID            uint      `json:"id"`
	ModUserID     uint      `json:"mod_user_id"`
	ModUsername   string    `json:"mod_username"`
	PostID        uint      `json:"post_id"`
	PostTitle     string    `json:"post_title"`
	CommunityID   uint      `json:"community_id"`
	CommunityName string    `json:"community_name"`
	Locked        bool      `json:"locked"`
	CreatedAt     time.Time `json:"created_at"`
}

type ModStickyPostView struct {
	ID            uint      `json:"id"`
	ModUserID     uint      `json:"mod_user_id"`
	ModUsername   string    `json:"mod_username"`
	PostID        uint      `json:"post_id"`
	PostTitle     string    `json:"post_title"`
	CommunityID   uint      `json:"community_id"`
	CommunityName string    `json:"community_name"`
	Stickied      bool      `json:"stickied"`
	CreatedAt     time.Time `json:"created_at"`
}

type ModRemoveCommentView struct {
	ID             uint      `json:"id"`
	ModUserID      uint      `json:"mod_user_id"`
	ModUsername    string    `json:"mod_username"`
	CommentID      uint      `json:"comment_id"`
	CommentContent string    `json:"comment_content"`
	PostID         uint      `json:"post_id"`
	CommunityID    uint      `json:"community_id"`
	CommunityName  string    `json:"community_name"`
	Reason         string    `json:"reason"`
	Removed        bool      `json:"removed"`
	CreatedAt      time.Time `json:"created_at"`
}

type ModRemoveCommunityView struct {
	ID            uint      `json:"id"`
	ModUserID     uint      `json:"mod_user_id"`
	ModUsername   string    `json:"mod_username"`
	CommunityID   uint      `json:"community_id"`
	CommunityName string    `json:"community_name"`
	Reason        string    `json:"reason"`
	Removed       bool      `json:"removed"`
	CreatedAt     time.Time `json:"created_at"`
}

type ModBanFromCommunityView struct {
	ID            uint       `json:"id"`
	ModUserID     uint       `json:"mod_user_id"`
	ModUsername   string     `json:"mod_username"`
	OtherUserID   uint       `json:"other_user_id"`
	OtherUsername string     `json:"other_username"`
	CommunityID   uint       `json:"community_id"`
	CommunityName string     `json:"community_name"`
	Reason        string     `json:"reason"`
	Banned        bool       `json:"banned"`
	Expires       *time.Time `json:"expires"`
	CreatedAt     time.Time  `json:"created_at"`
}

type ModBanView struct {
	ID            uint       `json:"id"`
	ModUserID     uint       `json:"mod_user_id"`
	ModUsername   string     `json:"mod_username"`
	OtherUserID   uint       `json:"other_user_id"`
	OtherUsername string     `json:"other_username"`
	Reason        string     `json:"reason"`
	Banned        bool       `json:"banned"`
	Expires       *time.Time `json:"expires"`
	CreatedAt     time.Time  `json:"created_at"`
}

type ModAddCommunityView struct {
	ID            uint      `json:"id"`
	ModUserID     uint      `json:"mod_user_id"`
	ModUsername   string    `json:"mod_username"`
	OtherUserID   uint      `json:"other_user_id"`
	OtherUsername string    `json:"other_username"`
	CommunityID   uint      `json:"community_id"`
	CommunityName string    `json:"community_name"`
	Removed       bool      `json:"removed"`
	CreatedAt     time.Time `json:"created_at"`
}

type ModAddView struct {
	ID            uint      `json:"id"`
	ModUserID     uint      `json:"mod_user_id"`
	ModUsername   string    `json:"mod_username"`
	OtherUserID   uint      `json:"other_user_id"`
	OtherUsername string    `json:"other_username"`
	Removed       bool      `json:"removed"`
	CreatedAt     time.Time `json:"created_at"`
}
