package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/adventistcho-art/ESG-Archive/internal/model"
	"github.com/adventistcho-art/ESG-Archive/pkg/jwt"
	"github.com/adventistcho-art/ESG-Archive/pkg/redis"
	"github.com/adventistcho-art/ESG-Archive/pkg/response"
)

// 认证信息在 gin.Context 中的键
const (
	CtxUserID   = "user_id"
	CtxRole     = "role"
	CtxEmail    = "email"
	CtxTokenJTI = "token_jti"
	CtxTokenExp = "token_exp"
)

// JWTAuth JWT 认证中间件
// 从 Authorization: Bearer <token> 中提取并验证 Access Token
// rdb 为 nil 时跳过黑名单检查
func JWTAuth(jwtMgr *jwt.Manager, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, response.CodeUnauthorized, "缺少认证头")
			c.Abort()
			return
		}

		token, ok := bearerToken(authHeader)
		if !ok {
			response.Unauthorized(c, response.CodeUnauthorized, "认证头格式无效")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(token)
		if err != nil {
			response.Unauthorized(c, response.CodeUnauthorized, "Token 无效或已过期")
			c.Abort()
			return
		}

		if revoked(c, rdb, claims) {
			response.Unauthorized(c, response.CodeUnauthorized, "Token 已失效")
			c.Abort()
			return
		}

		if !setIdentity(c, claims) {
			response.Unauthorized(c, response.CodeUnauthorized, "Token 角色无效")
			c.Abort()
			return
		}
		c.Next()
	}
}

// OptionalAuth 可选认证中间件
// 携带有效 Token 时注入身份，否则按匿名访问继续
func OptionalAuth(jwtMgr *jwt.Manager, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := bearerToken(c.GetHeader("Authorization")); ok {
			if claims, err := jwtMgr.ParseToken(token); err == nil && !revoked(c, rdb, claims) {
				_ = setIdentity(c, claims)
			}
		}
		c.Next()
	}
}

// RoleAuth 角色权限中间件
// 检查当前用户是否具有指定角色之一
func RoleAuth(allowedRoles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(CtxRole)
		if !exists {
			response.Unauthorized(c, response.CodeUnauthorized, "未认证")
			c.Abort()
			return
		}

		userRole, _ := role.(model.Role)
		for _, r := range allowedRoles {
			if userRole == r {
				c.Next()
				return
			}
		}

		response.Forbidden(c, response.CodeForbidden, "无权限访问")
		c.Abort()
	}
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || strings.TrimSpace(parts[1]) == "" {
		return "", false
	}
	return strings.TrimSpace(parts[1]), true
}

// revoked 检查 Token 是否已登出；Redis 出错时降级放行
func revoked(c *gin.Context, rdb *redis.Client, claims *jwt.Claims) bool {
	if rdb == nil || claims.ID == "" {
		return false
	}
	blacklisted, err := rdb.IsBlacklisted(c.Request.Context(), claims.ID)
	return err == nil && blacklisted
}

// setIdentity 注入身份；角色不是 USER / ADMIN 时不注入并返回 false
func setIdentity(c *gin.Context, claims *jwt.Claims) bool {
	role, ok := model.ParseRole(claims.Role)
	if !ok {
		return false
	}
	c.Set(CtxUserID, claims.UserID())
	c.Set(CtxRole, role)
	c.Set(CtxEmail, claims.Email)
	c.Set(CtxTokenJTI, claims.ID)
	if claims.ExpiresAt != nil {
		c.Set(CtxTokenExp, claims.ExpiresAt.Time)
	}
	return true
}
