package model

import (
	"time"

	"github.com/google/uuid"
)

// BaseModel 通用审计字段（所有业务模型嵌入）
type BaseModel struct {
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updatedAt"`
}

// newID 生成主键；库中的 gen_random_uuid() 仅作兜底
func newID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}
