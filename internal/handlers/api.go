package handlers

import (
	"errors"
	"net/http"

	"canopy/internal/api"

	"github.com/gin-gonic/gin"
)

type errorResponse struct {
	Error string `json:"error"`
}

// statusFor 把错误码映射到 HTTP 状态。错误码本身原样返回给调用方，
// 协议层状态只是辅助。
func statusFor(code string) int {
	switch code {
	case "not_logged_in":
		return http.StatusUnauthorized
	case "not_an_admin":
		return http.StatusForbidden
	case "couldnt_find_site", "couldnt_find_that_username_or_email":
		return http.StatusNotFound
	case "site_already_exists", "user_already_exists", "admin_already_created":
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

// Perform 把一类命令绑定到它的处理器：GET 从查询参数、其余从 JSON 请求体
// 解出命令载荷，执行，把错误码映射为状态返回。每条路由注册一次。
func Perform[C any, R any, PC interface {
	*C
	api.Operation[R]
}](ctx *api.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		var data C
		var err error
		if c.Request.Method == http.MethodGet {
			err = c.ShouldBindQuery(&data)
		} else {
			err = c.ShouldBindJSON(&data)
		}
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "couldnt_parse_request"})
			return
		}

		resp, err := PC(&data).Perform(ctx)
		if err != nil {
			var apiErr *api.Error
			if errors.As(err, &apiErr) {
				c.JSON(statusFor(apiErr.Code), errorResponse{Error: apiErr.Code})
				return
			}
			// 存储层错误原样透出
			c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
			return
		}

		c.JSON(http.StatusOK, resp)
	}
}
