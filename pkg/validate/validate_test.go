package validate

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Email    string `json:"email"    binding:"required,email"`
	Category string `json:"category" binding:"required,oneof=ENVIRONMENT SOCIAL GOVERNANCE"`
}

func bind(t *testing.T, body string) error {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")
	var req sample
	return c.ShouldBindJSON(&req)
}

func TestMessage_UsesJSONFieldName(t *testing.T) {
	require.NoError(t, Setup())

	err := bind(t, `{"category":"ENVIRONMENT"}`)
	require.Error(t, err)
	msg := Message(err)
	assert.True(t, strings.HasPrefix(msg, "email"), "期望以 json 字段名开头，实际 %q", msg)
}

func TestMessage_Oneof(t *testing.T) {
	require.NoError(t, Setup())

	err := bind(t, `{"email":"a@b.kr","category":"OTHER"}`)
	require.Error(t, err)
	assert.Contains(t, Message(err), "category")
}

func TestMessage_SyntaxError(t *testing.T) {
	require.NoError(t, Setup())

	err := bind(t, `{"email":`)
	require.Error(t, err)
	assert.Equal(t, "请求参数格式错误", Message(err))
}

func TestSetup_Idempotent(t *testing.T) {
	assert.NoError(t, Setup())
	assert.NoError(t, Setup())
}
