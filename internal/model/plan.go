package model

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// KpiTarget KPI 目标：名称、目标值（数值或文本）、单位
type KpiTarget struct {
	Name   string `json:"name"`
	Target string `json:"target"`
	Unit   string `json:"unit"`
}

// EsgPlan 年度 ESG 计划表 — 对应 esg_plans（参考数据，仅管理员维护）
type EsgPlan struct {
	PlanID      string                         `gorm:"type:uuid;primaryKey"                json:"id"`
	Year        int                            `gorm:"not null;index"                      json:"year"`
	Category    Category                       `gorm:"type:varchar(20);not null"           json:"category"`
	Title       string                         `gorm:"type:varchar(200);not null"          json:"title"`
	Description string                         `gorm:"type:text;not null;default:''"       json:"description"`
	DeptName    string                         `gorm:"type:varchar(100);not null"          json:"deptName"`
	Task        string                         `gorm:"type:varchar(200);not null"          json:"task"`
	Goals       datatypes.JSONSlice[string]    `gorm:"not null"                            json:"goals"`
	KpiTargets  datatypes.JSONSlice[KpiTarget] `gorm:"not null"                            json:"kpiTargets"`
	Budget      *float64                       `gorm:"type:numeric(15,2)"                  json:"budget"`
	Timeline    string                         `gorm:"type:varchar(100);not null;default:''" json:"timeline"`
	Status      PlanStatus                     `gorm:"type:varchar(20);not null;default:'PLANNED'" json:"status"`
	BaseModel
}

// TableName 指定表名
func (EsgPlan) TableName() string { return "esg_plans" }

// BeforeCreate 生成主键并补齐默认值
func (p *EsgPlan) BeforeCreate(*gorm.DB) error {
	newID(&p.PlanID)
	if p.Goals == nil {
		p.Goals = datatypes.JSONSlice[string]{}
	}
	if p.KpiTargets == nil {
		p.KpiTargets = datatypes.JSONSlice[KpiTarget]{}
	}
	if p.Status == "" {
		p.Status = PlanPlanned
	}
	return nil
}
