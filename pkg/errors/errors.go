package errors

import "errors"

// ── 错误分类 ──
// 业务错误统一归入以下类别，由 response.FromError 映射为 HTTP 状态码

var (
	ErrValidation   = errors.New("参数校验失败")
	ErrBadRequest   = errors.New("请求无效")
	ErrUnauthorized = errors.New("未认证")
	ErrForbidden    = errors.New("无权限访问")
	ErrNotFound     = errors.New("资源不存在")
	ErrConflict     = errors.New("资源冲突")
	ErrTooLarge     = errors.New("请求体过大")
	ErrStorage      = errors.New("存储失败")
)

// Error 携带分类与用户可见消息的业务错误
type Error struct {
	kind    error
	message string
	cause   error
}

// New 创建业务错误，kind 为上面的分类之一
func New(kind error, message string) *Error {
	return &Error{kind: kind, message: message}
}

// Wrap 创建携带底层原因的业务错误（原因不对外暴露）
func Wrap(kind error, message string, cause error) *Error {
	return &Error{kind: kind, message: message, cause: cause}
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.message + ": " + e.cause.Error()
	}
	return e.message
}

// Message 返回可直接展示给用户的消息
func (e *Error) Message() string { return e.message }

// Kind 返回错误分类
func (e *Error) Kind() error { return e.kind }

// Is 使 errors.Is(err, ErrNotFound) 等分类判断成立
func (e *Error) Is(target error) bool {
	return target == e.kind
}

func (e *Error) Unwrap() error { return e.cause }

// KindOf 返回 err 所属分类，无法识别时返回 nil
func KindOf(err error) error {
	for _, kind := range []error{
		ErrValidation, ErrBadRequest, ErrUnauthorized, ErrForbidden,
		ErrNotFound, ErrConflict, ErrTooLarge, ErrStorage,
	} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}

// MessageOf 提取用户可见消息；非业务错误返回空串
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.message
	}
	return ""
}
