package dto

// ── 项目模块 DTO ──

// CreateProjectRequest 创建项目请求
type CreateProjectRequest struct {
	Year           int      `json:"year"           binding:"required,min=1900,max=2100"`
	DeptName       string   `json:"deptName"       binding:"required,max=100"`
	Title          string   `json:"title"          binding:"required,max=200"`
	Category       string   `json:"category"       binding:"required,oneof=ENVIRONMENT SOCIAL GOVERNANCE"`
	Task           string   `json:"task"           binding:"required,max=200"`
	Thumbnail      *string  `json:"thumbnail"`
	OneLineSummary *string  `json:"oneLineSummary"`
	Quantitative   *string  `json:"quantitative"`
	Qualitative    string   `json:"qualitative"    binding:"required"`
	Budget         *float64 `json:"budget"         binding:"omitempty,min=0,max=9999999999999.99"`
	Shortcoming    *string  `json:"shortcoming"`
	Improvement    *string  `json:"improvement"`
	Images         []string `json:"images"         binding:"omitempty,dive,required"`
	Documents      []string `json:"documents"      binding:"omitempty,dive,required"`
	IsPublished    *bool    `json:"isPublished"`
}

// UpdateProjectRequest 更新项目请求（部分更新，nil 字段不修改）
type UpdateProjectRequest struct {
	Year           *int      `json:"year"           binding:"omitempty,min=1900,max=2100"`
	DeptName       *string   `json:"deptName"       binding:"omitempty,max=100"`
	Title          *string   `json:"title"          binding:"omitempty,max=200"`
	Category       *string   `json:"category"       binding:"omitempty,oneof=ENVIRONMENT SOCIAL GOVERNANCE"`
	Task           *string   `json:"task"           binding:"omitempty,max=200"`
	Thumbnail      *string   `json:"thumbnail"`
	OneLineSummary *string   `json:"oneLineSummary"`
	Quantitative   *string   `json:"quantitative"`
	Qualitative    *string   `json:"qualitative"`
	Budget         *float64  `json:"budget"         binding:"omitempty,min=0,max=9999999999999.99"`
	Shortcoming    *string   `json:"shortcoming"`
	Improvement    *string   `json:"improvement"`
	Images         *[]string `json:"images"`
	Documents      *[]string `json:"documents"`
	IsPublished    *bool     `json:"isPublished"`
}

// ProjectFilter 公开列表筛选条件（查询参数）
type ProjectFilter struct {
	Year     *int   `form:"year"     binding:"omitempty,min=1900,max=2100"`
	Category string `form:"category" binding:"omitempty,oneof=ENVIRONMENT SOCIAL GOVERNANCE"`
	DeptName string `form:"deptName" binding:"omitempty,max=100"`
}
