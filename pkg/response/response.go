package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgerrors "github.com/adventistcho-art/ESG-Archive/pkg/errors"
)

// Response 统一响应结构
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ── 通用错误码 ──

const (
	CodeValidation   = 10001
	CodeUnauthorized = 10002
	CodeForbidden    = 10003
	CodeRateLimited  = 10004
	CodeTooLarge     = 10005
	CodeBadRequest   = 10006
	CodeNotFound     = 10007
	CodeConflict     = 10008
	CodeInternal     = 50000
	CodeStorage      = 50001
)

// ── 成功响应 ──

// OK 200 成功响应
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Created 201 创建成功
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// ── 错误响应 ──

// Error 通用错误响应
func Error(c *gin.Context, httpStatus int, code int, message string) {
	c.JSON(httpStatus, Response{
		Code:    code,
		Message: message,
	})
}

// ── 常见快捷方式 ──

// BadRequest 400
func BadRequest(c *gin.Context, code int, message string) {
	Error(c, http.StatusBadRequest, code, message)
}

// Unauthorized 401
func Unauthorized(c *gin.Context, code int, message string) {
	Error(c, http.StatusUnauthorized, code, message)
}

// Forbidden 403
func Forbidden(c *gin.Context, code int, message string) {
	Error(c, http.StatusForbidden, code, message)
}

// NotFound 404
func NotFound(c *gin.Context, code int, message string) {
	Error(c, http.StatusNotFound, code, message)
}

// Conflict 409
func Conflict(c *gin.Context, code int, message string) {
	Error(c, http.StatusConflict, code, message)
}

// TooLarge 413
func TooLarge(c *gin.Context, message string) {
	Error(c, http.StatusRequestEntityTooLarge, CodeTooLarge, message)
}

// InternalError 500
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, CodeInternal, "服务器内部错误")
}

// FromError 按错误分类写入响应
// 业务错误使用其自带消息；无法识别的错误一律返回 500，不暴露内部细节
func FromError(c *gin.Context, err error) {
	kind := pkgerrors.KindOf(err)
	if kind == nil {
		_ = c.Error(err)
		InternalError(c)
		return
	}
	if kind == pkgerrors.ErrStorage {
		_ = c.Error(err)
	}

	message := pkgerrors.MessageOf(err)
	if message == "" {
		message = kind.Error()
	}
	status, code := statusOf(kind)
	Error(c, status, code, message)
}

func statusOf(kind error) (int, int) {
	switch kind {
	case pkgerrors.ErrValidation:
		return http.StatusBadRequest, CodeValidation
	case pkgerrors.ErrBadRequest:
		return http.StatusBadRequest, CodeBadRequest
	case pkgerrors.ErrUnauthorized:
		return http.StatusUnauthorized, CodeUnauthorized
	case pkgerrors.ErrForbidden:
		return http.StatusForbidden, CodeForbidden
	case pkgerrors.ErrNotFound:
		return http.StatusNotFound, CodeNotFound
	case pkgerrors.ErrConflict:
		return http.StatusConflict, CodeConflict
	case pkgerrors.ErrTooLarge:
		return http.StatusRequestEntityTooLarge, CodeTooLarge
	case pkgerrors.ErrStorage:
		return http.StatusInternalServerError, CodeStorage
	default:
		return http.StatusInternalServerError, CodeInternal
	}
}
