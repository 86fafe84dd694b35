package dto

// ── 年度计划 DTO ──

// KpiTargetInput KPI 目标
type KpiTargetInput struct {
	Name   string `json:"name"   binding:"required"`
	Target string `json:"target" binding:"required"`
	Unit   string `json:"unit"`
}

// CreatePlanRequest 创建年度计划
type CreatePlanRequest struct {
	Year        int              `json:"year"        binding:"required,min=1900,max=2100"`
	Category    string           `json:"category"    binding:"required,oneof=ENVIRONMENT SOCIAL GOVERNANCE"`
	Title       string           `json:"title"       binding:"required,max=200"`
	Description string           `json:"description"`
	DeptName    string           `json:"deptName"    binding:"required,max=100"`
	Task        string           `json:"task"        binding:"required,max=200"`
	Goals       []string         `json:"goals"       binding:"omitempty,dive,required"`
	KpiTargets  []KpiTargetInput `json:"kpiTargets"  binding:"omitempty,dive"`
	Budget      *float64         `json:"budget"      binding:"omitempty,min=0,max=9999999999999.99"`
	Timeline    string           `json:"timeline"    binding:"max=100"`
	Status      string           `json:"status"      binding:"omitempty,oneof=PLANNED IN_PROGRESS COMPLETED CANCELLED"`
}

// UpdatePlanRequest 更新年度计划（部分更新）
type UpdatePlanRequest struct {
	Year        *int              `json:"year"        binding:"omitempty,min=1900,max=2100"`
	Category    *string           `json:"category"    binding:"omitempty,oneof=ENVIRONMENT SOCIAL GOVERNANCE"`
	Title       *string           `json:"title"       binding:"omitempty,max=200"`
	Description *string           `json:"description"`
	DeptName    *string           `json:"deptName"    binding:"omitempty,max=100"`
	Task        *string           `json:"task"        binding:"omitempty,max=200"`
	Goals       *[]string         `json:"goals"`
	KpiTargets  *[]KpiTargetInput `json:"kpiTargets"`
	Budget      *float64          `json:"budget"      binding:"omitempty,min=0,max=9999999999999.99"`
	Timeline    *string           `json:"timeline"    binding:"omitempty,max=100"`
	Status      *string           `json:"status"      binding:"omitempty,oneof=PLANNED IN_PROGRESS COMPLETED CANCELLED"`
}

// PlanFilter 计划列表筛选条件
type PlanFilter struct {
	Year     *int   `form:"year"     binding:"omitempty,min=1900,max=2100"`
	Category string `form:"category" binding:"omitempty,oneof=ENVIRONMENT SOCIAL GOVERNANCE"`
}
