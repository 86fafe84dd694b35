package model

// ── 角色 ──

// Role 用户角色，仅 USER / ADMIN 两种取值
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Valid 校验角色取值
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// ParseRole 将 Token 中的字符串角色转换为 Role
func ParseRole(s string) (Role, bool) {
	r := Role(s)
	return r, r.Valid()
}

// ── ESG 分类 ──

// Category ESG 三大分类
type Category string

const (
	CategoryEnvironment Category = "ENVIRONMENT"
	CategorySocial      Category = "SOCIAL"
	CategoryGovernance  Category = "GOVERNANCE"
)

// Categories 固定顺序的全部分类（统计、白皮书按此顺序输出）
var Categories = []Category{CategoryEnvironment, CategorySocial, CategoryGovernance}

// Valid 校验分类取值
func (c Category) Valid() bool {
	switch c {
	case CategoryEnvironment, CategorySocial, CategoryGovernance:
		return true
	}
	return false
}

// ── 计划状态 ──

// PlanStatus 年度计划状态
type PlanStatus string

const (
	PlanPlanned    PlanStatus = "PLANNED"
	PlanInProgress PlanStatus = "IN_PROGRESS"
	PlanCompleted  PlanStatus = "COMPLETED"
	PlanCancelled  PlanStatus = "CANCELLED"
)

// Valid 校验状态取值
func (s PlanStatus) Valid() bool {
	switch s {
	case PlanPlanned, PlanInProgress, PlanCompleted, PlanCancelled:
		return true
	}
	return false
}
