package api

import (
	"canopy/internal/auth"
	"canopy/internal/models"

	"gorm.io/gorm"
)

type Register struct {
	Username       string `json:"username" form:"username"`
	Email          string `json:"email" form:"email"`
	Password       string `json:"password" form:"password"`
	PasswordVerify string `json:"password_verify" form:"password_verify"`
	Admin          bool   `json:"admin" form:"admin"`
	ShowNSFW       bool   `json:"show_nsfw" form:"show_nsfw"`
}

type Login struct {
	UsernameOrEmail string `json:"username_or_email" form:"username_or_email"`
	Password        string `json:"password" form:"password"`
}

type LoginResponse struct {
	JWT string `json:"jwt"`
}

func (data *Register) Perform(ctx *Context) (*LoginResponse, error) {
	if err := ctx.slurCheck(data.Username); err != nil {
		return nil, err
	}

	if data.Password != data.PasswordVerify {
		return nil, Err("passwords_dont_match")
	}
	if len(data.Password) < 6 {
		return nil, Err("password_too_short")
	}

	// 第一位管理员只能在还没有任何管理员时注册（引导流程走的就是这条路）
	if data.Admin {
		var admins int64
		if err := ctx.DB.Model(&models.User{}).Where("admin = ?", true).Count(&admins).Error; err != nil {
			return nil, err
		}
		if admins > 0 {
			return nil, Err("admin_already_created")
		}
	}

	// 站点关闭注册后只读（管理员引导除外）
	var site models.Site
	if err := ctx.DB.First(&site, models.SiteID).Error; err == nil {
		if !site.OpenRegistration && !data.Admin {
			return nil, Err("registration_closed")
		}
	}

	hash, err := auth.HashPassword(data.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username:     data.Username,
		Email:        data.Email,
		PasswordHash: hash,
		Admin:        data.Admin,
		ShowNSFW:     data.ShowNSFW,
	}
	if err := ctx.DB.Create(&user).Error; err != nil {
		return nil, Err("user_already_exists")
	}

	token, err := ctx.Verifier.Sign(user.ID)
	if err != nil {
		return nil, err
	}
	return &LoginResponse{JWT: token}, nil
}

func (data *Login) Perform(ctx *Context) (*LoginResponse, error) {
	var user models.User
	err := ctx.DB.Where("username = ? OR email = ?", data.UsernameOrEmail, data.UsernameOrEmail).
		First(&user).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, Err("couldnt_find_that_username_or_email")
		}
		return nil, err
	}

	if !auth.CheckPassword(data.Password, user.PasswordHash) {
		return nil, Err("password_incorrect")
	}

	token, err := ctx.Verifier.Sign(user.ID)
	if err != nil {
		return nil, err
	}
	return &LoginResponse{JWT: token}, nil
}
