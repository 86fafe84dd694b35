package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/adventistcho-art/ESG-Archive/config"
	"github.com/adventistcho-art/ESG-Archive/internal/api/handler"
	"github.com/adventistcho-art/ESG-Archive/internal/api/middleware"
	"github.com/adventistcho-art/ESG-Archive/internal/model"
	"github.com/adventistcho-art/ESG-Archive/pkg/jwt"
	"github.com/adventistcho-art/ESG-Archive/pkg/metrics"
	"github.com/adventistcho-art/ESG-Archive/pkg/redis"
	"github.com/adventistcho-art/ESG-Archive/pkg/storage"
)

// multipartOverhead multipart 边界与表单字段的额外字节
const multipartOverhead = 1 << 20

// 登录/注册限流：每个 IP、每个账号邮箱各自每分钟 10 次
const (
	authRateLimit  = 10
	authRateWindow = time.Minute
)

// Deps 路由所需的基础设施；Redis 与 Metrics 可为 nil
type Deps struct {
	Config  *config.Config
	Handler *handler.Handler
	JWT     *jwt.Manager
	Redis   *redis.Client
	Store   storage.Store
	Metrics *metrics.Metrics
	Logger  *zap.Logger
}

// Setup 初始化并返回 Gin 路由引擎
func Setup(d Deps) *gin.Engine {
	cfg, h := d.Config, d.Handler

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(d.Logger))
	r.Use(middleware.Metrics(d.Metrics))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))

	// ── 健康检查与指标 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if cfg.Metrics.Enabled && d.Metrics != nil {
		r.GET(cfg.Metrics.Path, gin.WrapH(d.Metrics.Handler()))
	}

	// ── 本地上传文件 ──
	if local, ok := d.Store.(*storage.LocalStore); ok {
		r.Static(local.PublicPath(), local.Dir())
	}

	jwtAuth := middleware.JWTAuth(d.JWT, d.Redis)
	optionalAuth := middleware.OptionalAuth(d.JWT, d.Redis)
	adminOnly := middleware.RoleAuth(model.RoleAdmin)
	authLimit := middleware.RateLimit(d.Redis, authRateLimit, authRateWindow,
		middleware.ByClientIP, middleware.ByAccountEmail)

	api := r.Group("/api")

	// JSON 接口统一的请求体上限；上传接口按类别单独限制
	v := api.Group("", middleware.BodyLimit(cfg.Server.MaxBodyBytes))
	{
		// 认证模块
		auth := v.Group("/auth")
		{
			auth.POST("/register", authLimit, h.Auth.Register)
			auth.POST("/login", authLimit, h.Auth.Login)
			auth.POST("/logout", jwtAuth, h.Auth.Logout)
		}

		// 用户模块
		v.GET("/users/me", jwtAuth, h.User.GetMe)

		// 项目模块：静态路径先于 /:id 注册
		projects := v.Group("/projects")
		{
			projects.GET("", h.Project.ListPublic)
			projects.GET("/years", h.Project.Years)
			projects.GET("/stats", h.Project.Stats)
			projects.GET("/admin/list", jwtAuth, h.Project.ListForActor)
			projects.GET("/admin/export", jwtAuth, h.Export.ExportProjects)

			projects.POST("", jwtAuth, h.Project.Create)
			projects.GET("/:id", optionalAuth, h.Project.Get)
			projects.PUT("/:id", jwtAuth, h.Project.Update)
			projects.DELETE("/:id", jwtAuth, h.Project.Delete)

			projects.GET("/:id/result", optionalAuth, h.Result.Get)
			projects.POST("/:id/result", jwtAuth, h.Result.Create)
			projects.PUT("/:id/result", jwtAuth, h.Result.Update)
		}

		// 年度计划模块（写操作仅管理员）
		plans := v.Group("/plans")
		{
			plans.GET("", h.Plan.List)
			plans.GET("/years", h.Plan.Years)
			plans.GET("/:id", h.Plan.Get)
			plans.POST("", jwtAuth, adminOnly, h.Plan.Create)
			plans.PUT("/:id", jwtAuth, adminOnly, h.Plan.Update)
			plans.DELETE("/:id", jwtAuth, adminOnly, h.Plan.Delete)
		}

		// 白皮书模块
		whitePapers := v.Group("/whitepaper")
		{
			whitePapers.GET("", h.WhitePaper.List)
			whitePapers.GET("/years", h.WhitePaper.Years)
			whitePapers.GET("/:year", h.WhitePaper.Get)
			whitePapers.POST("/:year/compile", jwtAuth, adminOnly, h.WhitePaper.Compile)
		}
	}

	// 上传模块
	upload := api.Group("/upload", jwtAuth)
	{
		up := cfg.Upload
		upload.POST("/image", middleware.BodyLimit(up.ImageMaxBytes+multipartOverhead), h.Upload.UploadImage)
		upload.POST("/document", middleware.BodyLimit(up.DocumentMaxBytes+multipartOverhead), h.Upload.UploadDocument)
		upload.POST("/images", middleware.BodyLimit(int64(up.MaxFiles)*up.ImageMaxBytes+multipartOverhead), h.Upload.UploadImages)
	}

	return r
}
