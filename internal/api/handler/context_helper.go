package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adventistcho-art/ESG-Archive/internal/api/middleware"
	"github.com/adventistcho-art/ESG-Archive/internal/model"
	"github.com/adventistcho-art/ESG-Archive/internal/policy"
	"github.com/adventistcho-art/ESG-Archive/pkg/response"
	"github.com/adventistcho-art/ESG-Archive/pkg/validate"
)

// ActorFrom 从 Gin 上下文中提取当前调用者；匿名访问返回 nil
func ActorFrom(c *gin.Context) *policy.Actor {
	uid := c.GetString(middleware.CtxUserID)
	if uid == "" {
		return nil
	}
	role, _ := c.Get(middleware.CtxRole)
	r, _ := role.(model.Role)
	return policy.NewActor(uid, r)
}

// MustGetActor 提取已认证的调用者。
// 如果 JWT 中间件未正确注入身份，返回 false 并写入 401 响应。
// 调用方应在 ok=false 时直接 return。
func MustGetActor(c *gin.Context) (*policy.Actor, bool) {
	actor := ActorFrom(c)
	if actor == nil {
		response.Unauthorized(c, response.CodeUnauthorized, "未认证")
		return nil, false
	}
	return actor, true
}

// MustGetUserID 从 Gin 上下文中安全提取 user_id。
func MustGetUserID(c *gin.Context) (string, bool) {
	actor, ok := MustGetActor(c)
	if !ok {
		return "", false
	}
	return actor.UserID, true
}

// tokenFrom 提取当前 Token 的 jti 与过期时间
func tokenFrom(c *gin.Context) (string, time.Time) {
	jti := c.GetString(middleware.CtxTokenJTI)
	exp, _ := c.Get(middleware.CtxTokenExp)
	t, _ := exp.(time.Time)
	return jti, t
}

// bindError 写入参数绑定失败的响应
func bindError(c *gin.Context, err error) {
	if middleware.IsBodyTooLarge(err) {
		response.TooLarge(c, "请求体过大")
		return
	}
	response.BadRequest(c, response.CodeValidation, validate.Message(err))
}

// yearParam 解析路径中的年份参数
func yearParam(c *gin.Context) (int, bool) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 1900 || year > 2100 {
		response.BadRequest(c, response.CodeValidation, "年份参数无效")
		return 0, false
	}
	return year, true
}
