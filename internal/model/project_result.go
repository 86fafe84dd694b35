package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProjectResult 项目成果报告表 — 对应 project_results
// 与 EsgProject 一对一
type ProjectResult struct {
	ResultID           string                      `gorm:"type:uuid;primaryKey"                json:"id"`
	ProjectID          string                      `gorm:"type:uuid;not null;uniqueIndex"      json:"projectId"`
	Summary            string                      `gorm:"type:text;not null"                  json:"summary"`
	Achievement        string                      `gorm:"type:text;not null"                  json:"achievement"`
	QuantitativeResult *string                     `gorm:"type:text"                           json:"quantitativeResult"`
	QualitativeResult  string                      `gorm:"type:text;not null"                  json:"qualitativeResult"`
	BudgetUsed         *float64                    `gorm:"type:numeric(15,2)"                  json:"budgetUsed"`
	Issues             *string                     `gorm:"type:text"                           json:"issues"`
	NextSteps          *string                     `gorm:"type:text"                           json:"nextSteps"`
	Images             datatypes.JSONSlice[string] `gorm:"not null"                            json:"images"`
	Documents          datatypes.JSONSlice[string] `gorm:"not null"                            json:"documents"`
	CompletedAt        time.Time                   `gorm:"not null"                            json:"completedAt"`
	BaseModel
}

// TableName 指定表名
func (ProjectResult) TableName() string { return "project_results" }

// BeforeCreate 生成主键并保证列表字段非空
func (r *ProjectResult) BeforeCreate(*gorm.DB) error {
	newID(&r.ResultID)
	if r.Images == nil {
		r.Images = datatypes.JSONSlice[string]{}
	}
	if r.Documents == nil {
		r.Documents = datatypes.JSONSlice[string]{}
	}
	return nil
}
