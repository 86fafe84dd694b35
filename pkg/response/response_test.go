package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	pkgerrors "github.com/adventistcho-art/ESG-Archive/pkg/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestFromError_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"校验失败", pkgerrors.New(pkgerrors.ErrValidation, "title 不能为空"), http.StatusBadRequest, "title 不能为空"},
		{"未认证", pkgerrors.New(pkgerrors.ErrUnauthorized, "邮箱或密码错误"), http.StatusUnauthorized, "邮箱或密码错误"},
		{"无权限", pkgerrors.New(pkgerrors.ErrForbidden, "无修改权限"), http.StatusForbidden, "无修改权限"},
		{"不存在", pkgerrors.New(pkgerrors.ErrNotFound, "项目不存在"), http.StatusNotFound, "项目不存在"},
		{"冲突", pkgerrors.New(pkgerrors.ErrConflict, "邮箱已被注册"), http.StatusConflict, "邮箱已被注册"},
		{"过大", pkgerrors.New(pkgerrors.ErrTooLarge, "文件过大"), http.StatusRequestEntityTooLarge, "文件过大"},
		{"存储失败", pkgerrors.Wrap(pkgerrors.ErrStorage, "文件保存失败", errors.New("disk full")), http.StatusInternalServerError, "文件保存失败"},
		{"未知错误", errors.New("pq: connection refused"), http.StatusInternalServerError, "服务器内部错误"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			FromError(c, tt.err)

			if w.Code != tt.wantStatus {
				t.Errorf("期望状态码 %d，实际 %d", tt.wantStatus, w.Code)
			}
			var resp Response
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("响应不是合法 JSON: %v", err)
			}
			if resp.Message != tt.wantMsg {
				t.Errorf("期望 message=%q，实际=%q", tt.wantMsg, resp.Message)
			}
		})
	}
}
