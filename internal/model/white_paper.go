package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CategorySummary 白皮书中单个 ESG 分类的汇总
type CategorySummary struct {
	TotalProjects     int      `json:"totalProjects"`
	TotalBudget       float64  `json:"totalBudget"`
	CompletedProjects int      `json:"completedProjects"`
	Highlights        []string `json:"highlights"`
	KeyResults        []string `json:"keyResults"`
}

// EsgWhitePaper 年度 ESG 白皮书表 — 对应 esg_white_papers
// 由已公开项目汇编生成，每年至多一份
type EsgWhitePaper struct {
	WhitePaperID       string                            `gorm:"type:uuid;primaryKey"       json:"id"`
	Year               int                               `gorm:"not null;uniqueIndex"       json:"year"`
	Title              string                            `gorm:"type:varchar(200);not null" json:"title"`
	Overview           string                            `gorm:"type:text;not null"         json:"overview"`
	Highlights         datatypes.JSONSlice[string]       `gorm:"not null"                   json:"highlights"`
	TotalBudget        float64                           `gorm:"type:numeric(15,2);not null" json:"totalBudget"`
	TotalProjects      int                               `gorm:"not null"                   json:"totalProjects"`
	EnvironmentSummary datatypes.JSONType[CategorySummary] `gorm:"not null"                 json:"environmentSummary"`
	SocialSummary      datatypes.JSONType[CategorySummary] `gorm:"not null"                 json:"socialSummary"`
	GovernanceSummary  datatypes.JSONType[CategorySummary] `gorm:"not null"                 json:"governanceSummary"`
	PublishedAt        time.Time                         `gorm:"not null"                   json:"publishedAt"`
	BaseModel
}

// TableName 指定表名
func (EsgWhitePaper) TableName() string { return "esg_white_papers" }

// BeforeCreate 生成主键
func (w *EsgWhitePaper) BeforeCreate(*gorm.DB) error {
	newID(&w.WhitePaperID)
	if w.Highlights == nil {
		w.Highlights = datatypes.JSONSlice[string]{}
	}
	return nil
}

// SummaryOf 按分类取汇总
func (w *EsgWhitePaper) SummaryOf(c Category) CategorySummary {
	switch c {
	case CategoryEnvironment:
		return w.EnvironmentSummary.Data()
	case CategorySocial:
		return w.SocialSummary.Data()
	default:
		return w.GovernanceSummary.Data()
	}
}
