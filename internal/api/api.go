package api

import (
	"errors"

	"canopy/internal/auth"
	"canopy/internal/config"
	"canopy/internal/models"
	"canopy/internal/query"
	"canopy/internal/slur"
	"canopy/internal/utils"

	"gorm.io/gorm"
)

// Error 携带单个字符串错误码，传输层据此映射 HTTP 状态。
// 未分类的存储错误不会被包装，原样向上传递。
type Error struct {
	Code string
}

func (e *Error) Error() string {
	return e.Code
}

func Err(code string) *Error {
	return &Error{Code: code}
}

// Context 打包一次命令执行需要的全部依赖。处理器自身无状态，
// 不持有任何跨请求的可变内存。
type Context struct {
	DB       *gorm.DB
	Config   *config.Config
	Verifier *auth.Verifier
	Slurs    *slur.Filter
}

// Operation 是命令与其处理器之间的约定：每种命令实现一次，
// 产出该命令的响应类型或错误。
type Operation[R any] interface {
	Perform(ctx *Context) (R, error)
}

// requireUser 解码身份令牌并加载用户。任何失败都归为 not_logged_in。
func (ctx *Context) requireUser(token string) (*models.User, error) {
	claims, err := ctx.Verifier.Decode(token)
	if err != nil {
		return nil, Err("not_logged_in")
	}
	var user models.User
	if err := ctx.DB.First(&user, claims.UserID).Error; err != nil {
		return nil, Err("not_logged_in")
	}
	return &user, nil
}

// slurCheck 扫描自由文本，命中时返回拼好的违禁词错误
func (ctx *Context) slurCheck(text string) error {
	if matched := ctx.Slurs.Check(text); len(matched) > 0 {
		return Err(slur.Join(matched))
	}
	return nil
}

// classify 把查询层的校验错误转成 API 错误码，其余错误原样传出
func classify(err error) error {
	if errors.Is(err, query.ErrInvalidPage) ||
		errors.Is(err, query.ErrInvalidSort) ||
		errors.Is(err, query.ErrInvalidSearchType) {
		return Err(err.Error())
	}
	return err
}

// readSiteView 读取单例站点并组装视图
func readSiteView(conn *gorm.DB) (*models.SiteView, error) {
	var site models.Site
	if err := conn.First(&site, models.SiteID).Error; err != nil {
		return nil, err
	}
	var creator models.User
	if err := conn.First(&creator, site.CreatorID).Error; err != nil {
		return nil, err
	}
	return &models.SiteView{
		ID:               site.ID,
		Name:             site.Name,
		Description:      site.Description,
		DescriptionHTML:  utils.RenderMarkdown(site.Description),
		CreatorID:        site.CreatorID,
		CreatorName:      creator.Username,
		EnableDownvotes:  site.EnableDownvotes,
		OpenRegistration: site.OpenRegistration,
		EnableNSFW:       site.EnableNSFW,
		CreatedAt:        site.CreatedAt,
		UpdatedAt:        site.UpdatedAt,
	}, nil
}

// creatorFirst 把站点创建者挪到管理员列表首位，其余相对顺序不变。
// 这是展示层约定，不是存储顺序。
func creatorFirst(admins []models.UserView, creatorID uint) []models.UserView {
	for i := range admins {
		if admins[i].ID == creatorID {
			creator := admins[i]
			rest := append(admins[:i:i], admins[i+1:]...)
			return append([]models.UserView{creator}, rest...)
		}
	}
	return admins
}
