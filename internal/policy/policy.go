// Package policy 集中定义资源访问规则。
//
// 所有入口（HTTP、种子脚本、导出）对项目类资源的读写判断都经由此包完成，
// 不在调用方比较角色字符串。规则只依赖操作者身份、角色与资源所有者/公开状态，无 I/O。
package policy

import (
	pkgerrors "github.com/adventistcho-art/ESG-Archive/pkg/errors"

	"github.com/adventistcho-art/ESG-Archive/internal/model"
)

// Actor 当前操作者；匿名访问以 nil 表示
type Actor struct {
	UserID string
	Role   model.Role
}

// NewActor 构造操作者
func NewActor(userID string, role model.Role) *Actor {
	return &Actor{UserID: userID, Role: role}
}

// Resource 带所有者与公开状态的资源
type Resource interface {
	OwnerID() string
	Published() bool
}

var (
	errWriteDenied  = pkgerrors.New(pkgerrors.ErrForbidden, "无修改权限")
	errDeleteDenied = pkgerrors.New(pkgerrors.ErrForbidden, "无删除权限")
	errAdminOnly    = pkgerrors.New(pkgerrors.ErrForbidden, "仅管理员可执行此操作")
)

// IsAdmin 是否为管理员
func IsAdmin(a *Actor) bool {
	return a != nil && a.Role == model.RoleAdmin
}

// Owns 操作者是否为资源所有者
func Owns(a *Actor, res Resource) bool {
	return a != nil && a.UserID != "" && a.UserID == res.OwnerID()
}

// CanRead 已公开资源任何人可读；未公开资源仅所有者与管理员可读
func CanRead(res Resource, a *Actor) bool {
	if res.Published() {
		return true
	}
	return IsAdmin(a) || Owns(a, res)
}

// CanWrite 管理员或所有者可修改
func CanWrite(res Resource, a *Actor) bool {
	return IsAdmin(a) || Owns(a, res)
}

// CanDelete 与 CanWrite 规则一致
func CanDelete(res Resource, a *Actor) bool {
	return CanWrite(res, a)
}

// RequireWrite 不满足 CanWrite 时返回 Forbidden
func RequireWrite(res Resource, a *Actor) error {
	if !CanWrite(res, a) {
		return errWriteDenied
	}
	return nil
}

// RequireDelete 不满足 CanDelete 时返回 Forbidden
func RequireDelete(res Resource, a *Actor) error {
	if !CanDelete(res, a) {
		return errDeleteDenied
	}
	return nil
}

// ListScope 管理列表的可见范围
type ListScope struct {
	All     bool   // true 表示不按所有者过滤
	OwnerID string // All=false 时仅返回该用户的记录
}

// ScopeForList 管理员看到全部记录，普通用户只看到自己的记录
func ScopeForList(a *Actor) ListScope {
	if IsAdmin(a) {
		return ListScope{All: true}
	}
	if a == nil {
		// 匿名调用方不应到达管理列表，返回一个不可能匹配的范围
		return ListScope{OwnerID: "\x00"}
	}
	return ListScope{OwnerID: a.UserID}
}

// RequireAdmin 参考数据（计划、白皮书）仅管理员可维护
func RequireAdmin(a *Actor) error {
	if !IsAdmin(a) {
		return errAdminOnly
	}
	return nil
}
