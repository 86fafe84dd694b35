package repository

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository 所有 Repository 的聚合入口
type Repository struct {
	User       UserRepository
	Project    ProjectRepository
	Result     ResultRepository
	Plan       PlanRepository
	WhitePaper WhitePaperRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:       NewUserRepo(db),
		Project:    NewProjectRepo(db),
		Result:     NewResultRepo(db),
		Plan:       NewPlanRepo(db),
		WhitePaper: NewWhitePaperRepo(db),
	}
}

// ── 内部辅助 ──

// validID 主键列为 uuid 类型，非法 ID 直接视为不存在，避免 PostgreSQL 类型转换报错
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// updateExisting 按主键覆盖全部列，不级联关联对象
// 记录已被删除时返回 gorm.ErrRecordNotFound，不会像 Save 那样回退为插入
func updateExisting(db *gorm.DB, value interface{}) error {
	res := db.Model(value).Omit(clause.Associations).Select("*").Updates(value)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern 构造 LIKE 子串匹配模式，转义通配符
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
