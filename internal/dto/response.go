package dto

import "time"

// ── 认证模块响应 ──

// TokenResponse 注册/登录成功响应
type TokenResponse struct {
	AccessToken string       `json:"access_token"`
	ExpiresIn   int          `json:"expires_in"` // Access Token 有效期（秒）
	User        UserResponse `json:"user"`
}

// ── 用户模块响应 ──

// UserResponse 用户公开信息（不含密码哈希）
type UserResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	DeptName string `json:"deptName"`
	Role     string `json:"role"`
}

// ── 项目模块响应 ──

// ProjectResponse 项目详情
type ProjectResponse struct {
	ID             string        `json:"id"`
	Year           int           `json:"year"`
	DeptName       string        `json:"deptName"`
	Title          string        `json:"title"`
	Category       string        `json:"category"`
	Task           string        `json:"task"`
	Thumbnail      *string       `json:"thumbnail"`
	OneLineSummary *string       `json:"oneLineSummary"`
	Quantitative   *string       `json:"quantitative"`
	Qualitative    string        `json:"qualitative"`
	Budget         *float64      `json:"budget"`
	Shortcoming    *string       `json:"shortcoming"`
	Improvement    *string       `json:"improvement"`
	Images         []string      `json:"images"`
	Documents      []string      `json:"documents"`
	IsPublished    bool          `json:"isPublished"`
	UserID         string        `json:"userId"`
	User           *UserResponse `json:"user,omitempty"`
	HasResult      bool          `json:"hasResult"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

// ProjectStatsResponse 项目统计
type ProjectStatsResponse struct {
	Total      int64            `json:"total"`
	Published  int64            `json:"published"`
	ByCategory map[string]int64 `json:"byCategory"`
}

// ── 上传模块响应 ──

// UploadResponse 单文件上传结果
type UploadResponse struct {
	URL string `json:"url"`
}

// MultiUploadResponse 多文件上传结果（顺序与请求一致）
type MultiUploadResponse struct {
	URLs []string `json:"urls"`
}
