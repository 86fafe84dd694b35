package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/adventistcho-art/ESG-Archive/internal/dto"
	"github.com/adventistcho-art/ESG-Archive/internal/service"
	"github.com/adventistcho-art/ESG-Archive/pkg/response"
)

// AuthHandler 认证模块 HTTP 处理器
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler 创建 AuthHandler
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Register 注册部门账号
// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.authSvc.Register(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, result)
}

// Login 用户登录
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, result)
}

// Logout 用户登出，当前 Token 立即失效
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	jti, exp := tokenFrom(c)
	if err := h.authSvc.Logout(c.Request.Context(), jti, exp); err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, nil)
}
