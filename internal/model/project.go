package model

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// EsgProject ESG 项目表 — 对应 esg_projects
type EsgProject struct {
	ProjectID      string                      `gorm:"type:uuid;primaryKey"          json:"id"`
	Year           int                         `gorm:"not null;index"                json:"year"`
	DeptName       string                      `gorm:"type:varchar(100);not null"    json:"deptName"`
	Title          string                      `gorm:"type:varchar(200);not null"    json:"title"`
	Category       Category                    `gorm:"type:varchar(20);not null"     json:"category"`
	Task           string                      `gorm:"type:varchar(200);not null"    json:"task"`
	Thumbnail      *string                     `gorm:"type:text"                     json:"thumbnail"`
	OneLineSummary *string                     `gorm:"type:text"                     json:"oneLineSummary"`
	Quantitative   *string                     `gorm:"type:text"                     json:"quantitative"`
	Qualitative    string                      `gorm:"type:text;not null"            json:"qualitative"`
	Budget         *float64                    `gorm:"type:numeric(15,2)"            json:"budget"`
	Shortcoming    *string                     `gorm:"type:text"                     json:"shortcoming"`
	Improvement    *string                     `gorm:"type:text"                     json:"improvement"`
	Images         datatypes.JSONSlice[string] `gorm:"not null"                      json:"images"`
	Documents      datatypes.JSONSlice[string] `gorm:"not null"                      json:"documents"`
	IsPublished    bool                        `gorm:"not null;default:false;index"  json:"isPublished"`
	UserID         string                      `gorm:"type:uuid;not null;index"      json:"userId"`
	BaseModel

	// 关联
	User   *User          `gorm:"foreignKey:UserID;references:UserID"       json:"-"`
	Result *ProjectResult `gorm:"foreignKey:ProjectID;references:ProjectID" json:"-"`
}

// TableName 指定表名
func (EsgProject) TableName() string { return "esg_projects" }

// BeforeCreate 生成主键并保证列表字段非空
func (p *EsgProject) BeforeCreate(*gorm.DB) error {
	newID(&p.ProjectID)
	if p.Images == nil {
		p.Images = datatypes.JSONSlice[string]{}
	}
	if p.Documents == nil {
		p.Documents = datatypes.JSONSlice[string]{}
	}
	return nil
}

// OwnerID 资源所有者，供鉴权策略使用
func (p *EsgProject) OwnerID() string { return p.UserID }

// Published 是否已公开
func (p *EsgProject) Published() bool { return p.IsPublished }
