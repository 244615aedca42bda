package api

import (
	"canopy/internal/models"
	"canopy/internal/query"
)

type Search struct {
	Q           string `json:"q" form:"q"`
	Type        string `json:"type" form:"type"`
	CommunityID *uint  `json:"community_id" form:"community_id"`
	Sort        string `json:"sort" form:"sort"`
	Page        *int   `json:"page" form:"page"`
	Limit       *int   `json:"limit" form:"limit"`
	Auth        string `json:"auth" form:"auth"`
}

// SearchResponse 四个结果集始终存在；未选中的类型返回空序列而不是缺失字段，
// 这样响应形状与 type 无关。
type SearchResponse struct {
	Type        string                 `json:"type"`
	Comments    []models.CommentView   `json:"comments"`
	Posts       []models.PostView      `json:"posts"`
	Communities []models.CommunityView `json:"communities"`
	Users       []models.UserView      `json:"users"`
}

func (data *Search) Perform(ctx *Context) (*SearchResponse, error) {
	// 搜索不强制登录：令牌缺失或无效时降级为匿名搜索（没有 my_vote），
	// 而不是让整个请求失败。
	var viewerID *uint
	if data.Auth != "" {
		if claims, err := ctx.Verifier.Decode(data.Auth); err == nil {
			viewerID = &claims.UserID
		}
	}

	sort, err := query.ParseSort(data.Sort)
	if err != nil {
		return nil, classify(err)
	}
	searchType, err := query.ParseSearchType(data.Type)
	if err != nil {
		return nil, classify(err)
	}

	resp := &SearchResponse{
		Type:        data.Type,
		Comments:    []models.CommentView{},
		Posts:       []models.PostView{},
		Communities: []models.CommunityView{},
		Users:       []models.UserView{},
	}

	postQuery := query.PostQuery{
		Sort:        sort,
		SearchTerm:  data.Q,
		CommunityID: data.CommunityID,
		ShowNSFW:    true,
		ViewerID:    viewerID,
		Page:        data.Page,
		Limit:       data.Limit,
	}
	commentQuery := query.CommentQuery{
		Sort:       sort,
		SearchTerm: data.Q,
		ViewerID:   viewerID,
		Page:       data.Page,
		Limit:      data.Limit,
	}
	communityQuery := query.CommunityQuery{
		Sort:       sort,
		SearchTerm: data.Q,
		ShowNSFW:   true,
		Page:       data.Page,
		Limit:      data.Limit,
	}
	userQuery := query.UserQuery{
		Sort:       sort,
		SearchTerm: data.Q,
		Page:       data.Page,
		Limit:      data.Limit,
	}

	switch searchType {
	case query.SearchPosts:
		if resp.Posts, err = postQuery.List(ctx.DB); err != nil {
			return nil, classify(err)
		}
	case query.SearchComments:
		if resp.Comments, err = commentQuery.List(ctx.DB); err != nil {
			return nil, classify(err)
		}
	case query.SearchCommunities:
		if resp.Communities, err = communityQuery.List(ctx.DB); err != nil {
			return nil, classify(err)
		}
	case query.SearchUsers:
		if resp.Users, err = userQuery.List(ctx.DB); err != nil {
			return nil, classify(err)
		}
	case query.SearchURL:
		// URL 搜索只匹配帖子的 url 字段，与全文搜索互斥
		postQuery.SearchTerm = ""
		postQuery.URLSearch = data.Q
		if resp.Posts, err = postQuery.List(ctx.DB); err != nil {
			return nil, classify(err)
		}
	case query.SearchAll:
		if resp.Posts, err = postQuery.List(ctx.DB); err != nil {
			return nil, classify(err)
		}
		if resp.Comments, err = commentQuery.List(ctx.DB); err != nil {
			return nil, classify(err)
		}
		if resp.Communities, err = communityQuery.List(ctx.DB); err != nil {
			return nil, classify(err)
		}
		if resp.Users, err = userQuery.List(ctx.DB); err != nil {
			return nil, classify(err)
		}
	}

	return resp, nil
}
