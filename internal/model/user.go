package model

import "gorm.io/gorm"

// User 用户表 — 对应 users
// 部门账号与管理员共用一张表，以 Role 区分
type User struct {
	UserID       string `gorm:"type:uuid;primaryKey"                  json:"id"`
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null"            json:"-"`
	DeptName     string `gorm:"type:varchar(100);not null"            json:"deptName"`
	Role         Role   `gorm:"type:varchar(10);not null;default:'USER'" json:"role"`
	BaseModel
}

// TableName 指定表名
func (User) TableName() string { return "users" }

// BeforeCreate 生成主键
func (u *User) BeforeCreate(*gorm.DB) error {
	newID(&u.UserID)
	return nil
}
