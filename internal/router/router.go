package router

import (
	"canopy/internal/api"
	"canopy/internal/handlers"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, ctx *api.Context) {
	v1 := r.Group("/api/v1")

	// 公共读取 (Public Reads)
	v1.GET("/categories", handlers.Perform[api.ListCategories, *api.ListCategoriesResponse](ctx)) // 分类列表
	v1.GET("/search", handlers.Perform[api.Search, *api.SearchResponse](ctx))                     // 联合搜索
	v1.GET("/modlog", handlers.Perform[api.GetModlog, *api.GetModlogResponse](ctx))               // 审核日志
	v1.GET("/site", handlers.Perform[api.GetSite, *api.GetSiteResponse](ctx))                     // 站点信息（含首次启动引导）

	// 站点管理 (Site Admin) —— 鉴权在命令载荷的 auth 字段里
	v1.POST("/site", handlers.Perform[api.CreateSite, *api.SiteResponse](ctx))              // 建站
	v1.PUT("/site", handlers.Perform[api.EditSite, *api.SiteResponse](ctx))                 // 改站点配置
	v1.POST("/site/transfer", handlers.Perform[api.TransferSite, *api.GetSiteResponse](ctx)) // 转让所有权

	// 账号 (Accounts)
	v1.POST("/user/register", handlers.Perform[api.Register, *api.LoginResponse](ctx)) // 注册
	v1.POST("/user/login", handlers.Perform[api.Login, *api.LoginResponse](ctx))       // 登录
}
