package dto

// ── 认证模块 DTO ──

// RegisterRequest 部门账号注册请求
type RegisterRequest struct {
	Email    string `json:"email"    binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=6,max=72"`
	DeptName string `json:"deptName" binding:"required,max=100"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
