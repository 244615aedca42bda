package api

import (
	"canopy/internal/models"
	"canopy/internal/query"
)

type GetModlog struct {
	ModUserID   *uint `json:"mod_user_id" form:"mod_user_id"`
	CommunityID *uint `json:"community_id" form:"community_id"`
	Page        *int  `json:"page" form:"page"`
	Limit       *int  `json:"limit" form:"limit"`
}

type GetModlogResponse struct {
	RemovedPosts        []models.ModRemovePostView       `json:"removed_posts"`
	LockedPosts         []models.ModLockPostView         `json:"locked_posts"`
	StickiedPosts       []models.ModStickyPostView       `json:"stickied_posts"`
	RemovedComments     []models.ModRemoveCommentView    `json:"removed_comments"`
	RemovedCommunities  []models.ModRemoveCommunityView  `json:"removed_communities"`
	BannedFromCommunity []models.ModBanFromCommunityView `json:"banned_from_community"`
	Banned              []models.ModBanView              `json:"banned"`
	AddedToCommunity    []models.ModAddCommunityView     `json:"added_to_community"`
	Added               []models.ModAddView              `json:"added"`
}

func (data *GetModlog) Perform(ctx *Context) (*GetModlogResponse, error) {
	conn := ctx.DB

	removedPosts, err := query.ModRemovePostViews(conn, data.CommunityID, data.ModUserID, data.Page, data.Limit)
	if err != nil {
		return nil, classify(err)
	}
	lockedPosts, err := query.ModLockPostViews(conn, data.CommunityID, data.ModUserID, data.Page, data.Limit)
	if err != nil {
		return nil, classify(err)
	}
	stickiedPosts, err := query.ModStickyPostViews(conn, data.CommunityID, data.ModUserID, data.Page, data.Limit)
	if err != nil {
		return nil, classify(err)
	}
	removedComments, err := query.ModRemoveCommentViews(conn, data.CommunityID, data.ModUserID, data.Page, data.Limit)
	if err != nil {
		return nil, classify(err)
	}
	bannedFromCommunity, err := query.ModBanFromCommunityViews(conn, data.CommunityID, data.ModUserID, data.Page, data.Limit)
	if err != nil {
		return nil, classify(err)
	}
	addedToCommunity, err := query.ModAddCommunityViews(conn, data.CommunityID, data.ModUserID, data.Page, data.Limit)
	if err != nil {
		return nil, classify(err)
	}

	// 全站三类动作只在不指定社区时查询；指定社区时直接给空列表，不碰全站表
	removedCommunities := []models.ModRemoveCommunityView{}
	banned := []models.ModBanView{}
	added := []models.ModAddView{}
	if data.CommunityID == nil {
		if removedCommunities, err = query.ModRemoveCommunityViews(conn, data.ModUserID, data.Page, data.Limit); err != nil {
			return nil, classify(err)
		}
		if banned, err = query.ModBanViews(conn, data.ModUserID, data.Page, data.Limit); err != nil {
			return nil, classify(err)
		}
		if added, err = query.ModAddViews(conn, data.ModUserID, data.Page, data.Limit); err != nil {
			return nil, classify(err)
		}
	}

	return &GetModlogResponse{
		RemovedPosts:        removedPosts,
		LockedPosts:         lockedPosts,
		StickiedPosts:       stickiedPosts,
		RemovedComments:     removedComments,
		RemovedCommunities:  removedCommunities,
		BannedFromCommunity: bannedFromCommunity,
		Banned:              banned,
		AddedToCommunity:    addedToCommunity,
		Added:               added,
	}, nil
}
