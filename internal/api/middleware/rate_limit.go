package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adventistcho-art/ESG-Archive/pkg/redis"
	"github.com/adventistcho-art/ESG-Archive/pkg/response"
)

// KeyFunc 提取一个限流维度；返回空串表示该请求不参与此维度
type KeyFunc func(c *gin.Context) string

// ByClientIP 按客户端 IP 计数
func ByClientIP(c *gin.Context) string {
	return "ip:" + c.ClientIP()
}

// ByAccountEmail 按请求体中的邮箱计数（去空白、小写），更换 IP 也无法绕过同一账号的限额
// 读取后恢复请求体，Handler 仍可正常绑定；读取出错时把错误原样留给 Handler
func ByAccountEmail(c *gin.Context) string {
	if c.Request.Body == nil {
		return ""
	}
	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.Request.Body = io.NopCloser(io.MultiReader(bytes.NewReader(data), errReader{err}))
		return ""
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(data))

	var body struct {
		Email string `json:"email"`
	}
	if json.Unmarshal(data, &body) != nil {
		return ""
	}
	email := strings.ToLower(strings.TrimSpace(body.Email))
	if email == "" {
		return ""
	}
	return "email:" + email
}

type errReader struct{ err error }

func (r errReader) Read([]byte) (int, error) { return 0, r.err }

// RateLimit 基于 Redis 滑动窗口的速率限制中间件
// limit: 每个维度在窗口内允许的最大请求数；任一维度超限即拒绝
// keys 为空时按 IP 计数
// rdb 为 nil 时降级放行（与 JWTAuth 策略一致）
func RateLimit(rdb *redis.Client, limit int, window time.Duration, keys ...KeyFunc) gin.HandlerFunc {
	if len(keys) == 0 {
		keys = []KeyFunc{ByClientIP}
	}
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		for _, keyOf := range keys {
			dim := keyOf(c)
			if dim == "" {
				continue
			}
			key := fmt.Sprintf("rate_limit:%s:%s", c.FullPath(), dim)
			allowed, err := rdb.CheckRateLimit(c.Request.Context(), key, limit, window)
			if err != nil {
				// Redis 出错时降级放行
				continue
			}
			if !allowed {
				response.Error(c, http.StatusTooManyRequests, response.CodeRateLimited, "请求过于频繁，请稍后再试")
				c.Abort()
				return
			}
		}

		c.Next()
	}
}
