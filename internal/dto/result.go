package dto

import "time"

// ── 成果报告 DTO ──

// CreateResultRequest 提交项目成果报告
type CreateResultRequest struct {
	Summary            string    `json:"summary"            binding:"required"`
	Achievement        string    `json:"achievement"        binding:"required"`
	QuantitativeResult *string   `json:"quantitativeResult"`
	QualitativeResult  string    `json:"qualitativeResult"  binding:"required"`
	BudgetUsed         *float64  `json:"budgetUsed"         binding:"omitempty,min=0,max=9999999999999.99"`
	Issues             *string   `json:"issues"`
	NextSteps          *string   `json:"nextSteps"`
	Images             []string  `json:"images"             binding:"omitempty,dive,required"`
	Documents          []string  `json:"documents"          binding:"omitempty,dive,required"`
	CompletedAt        time.Time `json:"completedAt"        binding:"required"`
}

// UpdateResultRequest 更新成果报告（部分更新）
type UpdateResultRequest struct {
	Summary            *string    `json:"summary"`
	Achievement        *string    `json:"achievement"`
	QuantitativeResult *string    `json:"quantitativeResult"`
	QualitativeResult  *string    `json:"qualitativeResult"`
	BudgetUsed         *float64   `json:"budgetUsed"         binding:"omitempty,min=0,max=9999999999999.99"`
	Issues             *string    `json:"issues"`
	NextSteps          *string    `json:"nextSteps"`
	Images             *[]string  `json:"images"`
	Documents          *[]string  `json:"documents"`
	CompletedAt        *time.Time `json:"completedAt"`
}
