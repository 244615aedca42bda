package api

import (
	"errors"
	"log"

	"canopy/internal/models"
	"canopy/internal/query"
)

type CreateSite struct {
	Name             string `json:"name" form:"name"`
	Description      string `json:"description" form:"description"`
	EnableDownvotes  bool   `json:"enable_downvotes" form:"enable_downvotes"`
	OpenRegistration bool   `json:"open_registration" form:"open_registration"`
	EnableNSFW       bool   `json:"enable_nsfw" form:"enable_nsfw"`
	Auth             string `json:"auth" form:"auth"`
}

type EditSite struct {
	Name             string `json:"name" form:"name"`
	Description      string `json:"description" form:"description"`
	EnableDownvotes  bool   `json:"enable_downvotes" form:"enable_downvotes"`
	OpenRegistration bool   `json:"open_registration" form:"open_registration"`
	EnableNSFW       bool   `json:"enable_nsfw" form:"enable_nsfw"`
	Auth             string `json:"auth" form:"auth"`
}

type GetSite struct{}

type TransferSite struct {
	UserID uint   `json:"user_id" form:"user_id"`
	Auth   string `json:"auth" form:"auth"`
}

type SiteResponse struct {
	Site *models.SiteView `json:"site"`
}

type GetSiteResponse struct {
	Site   *models.SiteView  `json:"site"`
	Admins []models.UserView `json:"admins"`
	Banned []models.UserView `json:"banned"`
	// 在线人数由外部的长连接层统计，这里恒为 0
	Online int `json:"online"`
}

func (data *CreateSite) Perform(ctx *Context) (*SiteResponse, error) {
	user, err := ctx.requireUser(data.Auth)
	if err != nil {
		return nil, err
	}

	if err := ctx.slurCheck(data.Name); err != nil {
		return nil, err
	}
	if err := ctx.slurCheck(data.Description); err != nil {
		return nil, err
	}

	// Make sure user is an admin
	if !user.Admin {
		return nil, Err("not_an_admin")
	}

	site := models.Site{
		ID:               models.SiteID,
		Name:             data.Name,
		Description:      data.Description,
		CreatorID:        user.ID,
		EnableDownvotes:  data.EnableDownvotes,
		OpenRegistration: data.OpenRegistration,
		EnableNSFW:       data.EnableNSFW,
	}
	// 站点是单例：主键固定为 SiteID，并发创建时输家在这里撞约束
	if err := ctx.DB.Create(&site).Error; err != nil {
		return nil, Err("site_already_exists")
	}

	view, err := readSiteView(ctx.DB)
	if err != nil {
		return nil, err
	}
	return &SiteResponse{Site: view}, nil
}

func (data *EditSite) Perform(ctx *Context) (*SiteResponse, error) {
	user, err := ctx.requireUser(data.Auth)
	if err != nil {
		return nil, err
	}

	if err := ctx.slurCheck(data.Name); err != nil {
		return nil, err
	}
	if err := ctx.slurCheck(data.Description); err != nil {
		return nil, err
	}

	// Make sure user is an admin
	if !user.Admin {
		return nil, Err("not_an_admin")
	}

	var site models.Site
	if err := ctx.DB.First(&site, models.SiteID).Error; err != nil {
		return nil, Err("couldnt_find_site")
	}

	// creator_id 不在这里改，所有权转移走 TransferSite
	updates := map[string]interface{}{
		"name":              data.Name,
		"description":       data.Description,
		"enable_downvotes":  data.EnableDownvotes,
		"open_registration": data.OpenRegistration,
		"enable_nsfw":       data.EnableNSFW,
	}
	if err := ctx.DB.Model(&site).Updates(updates).Error; err != nil {
		return nil, Err("couldnt_update_site")
	}

	view, err := readSiteView(ctx.DB)
	if err != nil {
		return nil, err
	}
	return &SiteResponse{Site: view}, nil
}

func (data *GetSite) Perform(ctx *Context) (*GetSiteResponse, error) {
	// 站点状态机：site-exists 直接返回；no-site 且配置了 setup 则引导；
	// 否则保持 no-site，site 字段为空。
	view, err := readSiteView(ctx.DB)
	if err != nil {
		if ctx.Config.Setup != nil {
			view, err = bootstrap(ctx)
			if err != nil {
				return nil, err
			}
		} else {
			view = nil
		}
	}

	admins, err := query.Admins(ctx.DB)
	if err != nil {
		return nil, err
	}
	if view != nil {
		admins = creatorFirst(admins, view.CreatorID)
	}

	banned, err := query.Banned(ctx.DB)
	if err != nil {
		return nil, err
	}

	return &GetSiteResponse{
		Site:   view,
		Admins: admins,
		Banned: banned,
		Online: 0,
	}, nil
}

// bootstrap 首次启动引导：先注册初始管理员，再以其身份建站。
// 两个请求同时走到这里时，输家的建站会撞上主键约束拿到 site_already_exists，
// 此时站点已经被赢家建好，直接读出来返回即可，引导整体是幂等的。
func bootstrap(ctx *Context) (*models.SiteView, error) {
	setup := ctx.Config.Setup

	register := Register{
		Username:       setup.AdminUsername,
		Email:          setup.AdminEmail,
		Password:       setup.AdminPassword,
		PasswordVerify: setup.AdminPassword,
		Admin:          true,
		ShowNSFW:       true,
	}
	login, err := register.Perform(ctx)
	if err != nil {
		// 管理员可能已由并发的引导注册过，降级为登录拿令牌
		var apiErr *Error
		if !errors.As(err, &apiErr) {
			return nil, err
		}
		switch apiErr.Code {
		case "user_already_exists", "admin_already_created":
			login, err = (&Login{
				UsernameOrEmail: setup.AdminUsername,
				Password:        setup.AdminPassword,
			}).Perform(ctx)
			if err != nil {
				return nil, err
			}
		default:
			return nil, err
		}
	} else {
		log.Printf("Admin %s created", setup.AdminUsername)
	}

	createSite := CreateSite{
		Name: setup.SiteName,
		Auth: login.JWT,
	}
	if _, err := createSite.Perform(ctx); err != nil {
		var apiErr *Error
		// 输掉引导竞争时站点已存在，照常返回
		if !errors.As(err, &apiErr) || apiErr.Code != "site_already_exists" {
			return nil, err
		}
	} else {
		log.Printf("Site %s created", setup.SiteName)
	}

	return readSiteView(ctx.DB)
}

func (data *TransferSite) Perform(ctx *Context) (*GetSiteResponse, error) {
	user, err := ctx.requireUser(data.Auth)
	if err != nil {
		return nil, err
	}

	var site models.Site
	if err := ctx.DB.First(&site, models.SiteID).Error; err != nil {
		return nil, Err("couldnt_find_site")
	}

	// Make sure user is the creator
	if site.CreatorID != user.ID {
		return nil, Err("not_an_admin")
	}

	if err := ctx.DB.Model(&site).Update("creator_id", data.UserID).Error; err != nil {
		return nil, Err("couldnt_update_site")
	}

	// 留一条加管理员的审核记录
	modAdd := models.ModAdd{
		ModUserID:   user.ID,
		OtherUserID: data.UserID,
		Removed:     false,
	}
	if err := ctx.DB.Create(&modAdd).Error; err != nil {
		return nil, err
	}

	view, err := readSiteView(ctx.DB)
	if err != nil {
		return nil, err
	}

	admins, err := query.Admins(ctx.DB)
	if err != nil {
		return nil, err
	}
	admins = creatorFirst(admins, view.CreatorID)

	banned, err := query.Banned(ctx.DB)
	if err != nil {
		return nil, err
	}

	return &GetSiteResponse{
		Site:   view,
		Admins: admins,
		Banned: banned,
		Online: 0,
	}, nil
}
